//go:build darwin && amd64

package sys

/*
#cgo darwin LDFLAGS: -framework Hypervisor
#include "hypervisor.h"
*/
import "C"

import (
	"math"
	"unsafe"
)

// VCPU is a vCPU instance id (hv_vcpuid_t).
type VCPU uint32

// Space is a guest physical address space id (hv_vm_space_t).
type Space uint32

// GPA is a guest physical address (hv_gpaddr_t).
type GPA uint64

// MemoryFlags is a guest memory permission mask (hv_memory_flags_t).
type MemoryFlags uint64

// VmOptions are the hv_vm_create flags (hv_vm_options_t).
type VmOptions uint64

// Capability selects a system capability (hv_capability_t).
type Capability uint64

// X86Reg selects an architectural register (hv_x86_reg_t).
type X86Reg uint32

// VmxCapability selects a VMX capability word (hv_vmx_capability_t).
type VmxCapability uint32

// ShadowFlags are shadow VMCS access permissions (hv_shadow_flags_t).
type ShadowFlags uint64

// VmcsField is a VMCS field encoding.
type VmcsField uint32

// VmxReason is a basic VM-exit reason.
type VmxReason uint32

// IrqInfo is an interruption information bit pattern.
type IrqInfo uint32

const (
	HV_MEMORY_READ  MemoryFlags = C.HV_MEMORY_READ
	HV_MEMORY_WRITE MemoryFlags = C.HV_MEMORY_WRITE
	HV_MEMORY_EXEC  MemoryFlags = C.HV_MEMORY_EXEC
)

const (
	HV_VM_DEFAULT             VmOptions = C.HV_VM_DEFAULT
	HV_VM_SPECIFY_MITIGATIONS VmOptions = C.HV_VM_SPECIFY_MITIGATIONS
	HV_VM_MITIGATION_A_ENABLE VmOptions = C.HV_VM_MITIGATION_A_ENABLE
	HV_VM_MITIGATION_B_ENABLE VmOptions = C.HV_VM_MITIGATION_B_ENABLE
	HV_VM_MITIGATION_C_ENABLE VmOptions = C.HV_VM_MITIGATION_C_ENABLE
	HV_VM_MITIGATION_D_ENABLE VmOptions = C.HV_VM_MITIGATION_D_ENABLE
	HV_VM_MITIGATION_E_ENABLE VmOptions = C.HV_VM_MITIGATION_E_ENABLE
	HV_VM_SPACE_DEFAULT       Space     = C.HV_VM_SPACE_DEFAULT
	HV_VCPU_DEFAULT           uint64    = C.HV_VCPU_DEFAULT
	HV_DEADLINE_FOREVER       uint64    = math.MaxUint64
)

const (
	HV_CAP_VCPUMAX      Capability = C.HV_CAP_VCPUMAX
	HV_CAP_ADDRSPACEMAX Capability = C.HV_CAP_ADDRSPACEMAX
)

const (
	HV_VMX_CAP_PINBASED         VmxCapability = C.HV_VMX_CAP_PINBASED
	HV_VMX_CAP_PROCBASED        VmxCapability = C.HV_VMX_CAP_PROCBASED
	HV_VMX_CAP_PROCBASED2       VmxCapability = C.HV_VMX_CAP_PROCBASED2
	HV_VMX_CAP_ENTRY            VmxCapability = C.HV_VMX_CAP_ENTRY
	HV_VMX_CAP_EXIT             VmxCapability = C.HV_VMX_CAP_EXIT
	HV_VMX_CAP_PREEMPTION_TIMER VmxCapability = C.HV_VMX_CAP_PREEMPTION_TIMER
)

const (
	HV_SHADOW_VMCS_NONE  ShadowFlags = C.HV_SHADOW_VMCS_NONE
	HV_SHADOW_VMCS_READ  ShadowFlags = C.HV_SHADOW_VMCS_READ
	HV_SHADOW_VMCS_WRITE ShadowFlags = C.HV_SHADOW_VMCS_WRITE
)

// Architectural register selectors (hv_x86_reg_t).
const (
	HV_X86_RIP           X86Reg = C.HV_X86_RIP
	HV_X86_RFLAGS        X86Reg = C.HV_X86_RFLAGS
	HV_X86_RAX           X86Reg = C.HV_X86_RAX
	HV_X86_RCX           X86Reg = C.HV_X86_RCX
	HV_X86_RDX           X86Reg = C.HV_X86_RDX
	HV_X86_RBX           X86Reg = C.HV_X86_RBX
	HV_X86_RSI           X86Reg = C.HV_X86_RSI
	HV_X86_RDI           X86Reg = C.HV_X86_RDI
	HV_X86_RSP           X86Reg = C.HV_X86_RSP
	HV_X86_RBP           X86Reg = C.HV_X86_RBP
	HV_X86_R8            X86Reg = C.HV_X86_R8
	HV_X86_R9            X86Reg = C.HV_X86_R9
	HV_X86_R10           X86Reg = C.HV_X86_R10
	HV_X86_R11           X86Reg = C.HV_X86_R11
	HV_X86_R12           X86Reg = C.HV_X86_R12
	HV_X86_R13           X86Reg = C.HV_X86_R13
	HV_X86_R14           X86Reg = C.HV_X86_R14
	HV_X86_R15           X86Reg = C.HV_X86_R15
	HV_X86_CS            X86Reg = C.HV_X86_CS
	HV_X86_SS            X86Reg = C.HV_X86_SS
	HV_X86_DS            X86Reg = C.HV_X86_DS
	HV_X86_ES            X86Reg = C.HV_X86_ES
	HV_X86_FS            X86Reg = C.HV_X86_FS
	HV_X86_GS            X86Reg = C.HV_X86_GS
	HV_X86_IDT_BASE      X86Reg = C.HV_X86_IDT_BASE
	HV_X86_IDT_LIMIT     X86Reg = C.HV_X86_IDT_LIMIT
	HV_X86_GDT_BASE      X86Reg = C.HV_X86_GDT_BASE
	HV_X86_GDT_LIMIT     X86Reg = C.HV_X86_GDT_LIMIT
	HV_X86_LDTR          X86Reg = C.HV_X86_LDTR
	HV_X86_LDT_BASE      X86Reg = C.HV_X86_LDT_BASE
	HV_X86_LDT_LIMIT     X86Reg = C.HV_X86_LDT_LIMIT
	HV_X86_LDT_AR        X86Reg = C.HV_X86_LDT_AR
	HV_X86_TR            X86Reg = C.HV_X86_TR
	HV_X86_TSS_BASE      X86Reg = C.HV_X86_TSS_BASE
	HV_X86_TSS_LIMIT     X86Reg = C.HV_X86_TSS_LIMIT
	HV_X86_TSS_AR        X86Reg = C.HV_X86_TSS_AR
	HV_X86_CR0           X86Reg = C.HV_X86_CR0
	HV_X86_CR1           X86Reg = C.HV_X86_CR1
	HV_X86_CR2           X86Reg = C.HV_X86_CR2
	HV_X86_CR3           X86Reg = C.HV_X86_CR3
	HV_X86_CR4           X86Reg = C.HV_X86_CR4
	HV_X86_DR0           X86Reg = C.HV_X86_DR0
	HV_X86_DR1           X86Reg = C.HV_X86_DR1
	HV_X86_DR2           X86Reg = C.HV_X86_DR2
	HV_X86_DR3           X86Reg = C.HV_X86_DR3
	HV_X86_DR4           X86Reg = C.HV_X86_DR4
	HV_X86_DR5           X86Reg = C.HV_X86_DR5
	HV_X86_DR6           X86Reg = C.HV_X86_DR6
	HV_X86_DR7           X86Reg = C.HV_X86_DR7
	HV_X86_TPR           X86Reg = C.HV_X86_TPR
	HV_X86_XCR0          X86Reg = C.HV_X86_XCR0
	HV_X86_REGISTERS_MAX X86Reg = C.HV_X86_REGISTERS_MAX
)

// VMCS field encodings.
const (
	VMCS_VPID                        VmcsField = C.VMCS_VPID
	VMCS_CTRL_POSTED_INT_N_VECTOR    VmcsField = C.VMCS_CTRL_POSTED_INT_N_VECTOR
	VMCS_CTRL_EPTP_INDEX             VmcsField = C.VMCS_CTRL_EPTP_INDEX
	VMCS_GUEST_ES                    VmcsField = C.VMCS_GUEST_ES
	VMCS_GUEST_CS                    VmcsField = C.VMCS_GUEST_CS
	VMCS_GUEST_SS                    VmcsField = C.VMCS_GUEST_SS
	VMCS_GUEST_DS                    VmcsField = C.VMCS_GUEST_DS
	VMCS_GUEST_FS                    VmcsField = C.VMCS_GUEST_FS
	VMCS_GUEST_GS                    VmcsField = C.VMCS_GUEST_GS
	VMCS_GUEST_LDTR                  VmcsField = C.VMCS_GUEST_LDTR
	VMCS_GUEST_TR                    VmcsField = C.VMCS_GUEST_TR
	VMCS_GUEST_INT_STATUS            VmcsField = C.VMCS_GUEST_INT_STATUS
	VMCS_GUESTPML_INDEX              VmcsField = C.VMCS_GUESTPML_INDEX
	VMCS_HOST_ES                     VmcsField = C.VMCS_HOST_ES
	VMCS_HOST_CS                     VmcsField = C.VMCS_HOST_CS
	VMCS_HOST_SS                     VmcsField = C.VMCS_HOST_SS
	VMCS_HOST_DS                     VmcsField = C.VMCS_HOST_DS
	VMCS_HOST_FS                     VmcsField = C.VMCS_HOST_FS
	VMCS_HOST_GS                     VmcsField = C.VMCS_HOST_GS
	VMCS_HOST_TR                     VmcsField = C.VMCS_HOST_TR
	VMCS_CTRL_IO_BITMAP_A            VmcsField = C.VMCS_CTRL_IO_BITMAP_A
	VMCS_CTRL_IO_BITMAP_B            VmcsField = C.VMCS_CTRL_IO_BITMAP_B
	VMCS_CTRL_MSR_BITMAPS            VmcsField = C.VMCS_CTRL_MSR_BITMAPS
	VMCS_CTRL_VMEXIT_MSR_STORE_ADDR  VmcsField = C.VMCS_CTRL_VMEXIT_MSR_STORE_ADDR
	VMCS_CTRL_VMEXIT_MSR_LOAD_ADDR   VmcsField = C.VMCS_CTRL_VMEXIT_MSR_LOAD_ADDR
	VMCS_CTRL_VMENTRY_MSR_LOAD_ADDR  VmcsField = C.VMCS_CTRL_VMENTRY_MSR_LOAD_ADDR
	VMCS_CTRL_EXECUTIVE_VMCS_PTR     VmcsField = C.VMCS_CTRL_EXECUTIVE_VMCS_PTR
	VMCS_CTRL_PML_ADDR               VmcsField = C.VMCS_CTRL_PML_ADDR
	VMCS_CTRL_TSC_OFFSET             VmcsField = C.VMCS_CTRL_TSC_OFFSET
	VMCS_CTRL_VIRTUAL_APIC           VmcsField = C.VMCS_CTRL_VIRTUAL_APIC
	VMCS_CTRL_APIC_ACCESS            VmcsField = C.VMCS_CTRL_APIC_ACCESS
	VMCS_CTRL_POSTED_INT_DESC_ADDR   VmcsField = C.VMCS_CTRL_POSTED_INT_DESC_ADDR
	VMCS_CTRL_VMFUNC_CTRL            VmcsField = C.VMCS_CTRL_VMFUNC_CTRL
	VMCS_CTRL_EPTP                   VmcsField = C.VMCS_CTRL_EPTP
	VMCS_CTRL_EOI_EXIT_BITMAP_0      VmcsField = C.VMCS_CTRL_EOI_EXIT_BITMAP_0
	VMCS_CTRL_EOI_EXIT_BITMAP_1      VmcsField = C.VMCS_CTRL_EOI_EXIT_BITMAP_1
	VMCS_CTRL_EOI_EXIT_BITMAP_2      VmcsField = C.VMCS_CTRL_EOI_EXIT_BITMAP_2
	VMCS_CTRL_EOI_EXIT_BITMAP_3      VmcsField = C.VMCS_CTRL_EOI_EXIT_BITMAP_3
	VMCS_CTRL_EPTP_LIST_ADDR         VmcsField = C.VMCS_CTRL_EPTP_LIST_ADDR
	VMCS_CTRL_VMREAD_BITMAP_ADDR     VmcsField = C.VMCS_CTRL_VMREAD_BITMAP_ADDR
	VMCS_CTRL_VMWRITE_BITMAP_ADDR    VmcsField = C.VMCS_CTRL_VMWRITE_BITMAP_ADDR
	VMCS_CTRL_VIRT_EXC_INFO_ADDR     VmcsField = C.VMCS_CTRL_VIRT_EXC_INFO_ADDR
	VMCS_CTRL_XSS_EXITING_BITMAP     VmcsField = C.VMCS_CTRL_XSS_EXITING_BITMAP
	VMCS_CTRL_ENCLS_EXITING_BITMAP   VmcsField = C.VMCS_CTRL_ENCLS_EXITING_BITMAP
	VMCS_CTRL_TSC_MULTIPLIER         VmcsField = C.VMCS_CTRL_TSC_MULTIPLIER
	VMCS_GUEST_PHYSICAL_ADDRESS      VmcsField = C.VMCS_GUEST_PHYSICAL_ADDRESS
	VMCS_GUEST_LINK_POINTER          VmcsField = C.VMCS_GUEST_LINK_POINTER
	VMCS_GUEST_IA32_DEBUGCTL         VmcsField = C.VMCS_GUEST_IA32_DEBUGCTL
	VMCS_GUEST_IA32_PAT              VmcsField = C.VMCS_GUEST_IA32_PAT
	VMCS_GUEST_IA32_EFER             VmcsField = C.VMCS_GUEST_IA32_EFER
	VMCS_GUEST_IA32_PERF_GLOBAL_CTRL VmcsField = C.VMCS_GUEST_IA32_PERF_GLOBAL_CTRL
	VMCS_GUEST_PDPTE0                VmcsField = C.VMCS_GUEST_PDPTE0
	VMCS_GUEST_PDPTE1                VmcsField = C.VMCS_GUEST_PDPTE1
	VMCS_GUEST_PDPTE2                VmcsField = C.VMCS_GUEST_PDPTE2
	VMCS_GUEST_PDPTE3                VmcsField = C.VMCS_GUEST_PDPTE3
	VMCS_GUEST_IA32_BNDCFGS          VmcsField = C.VMCS_GUEST_IA32_BNDCFGS
	VMCS_HOST_IA32_PAT               VmcsField = C.VMCS_HOST_IA32_PAT
	VMCS_HOST_IA32_EFER              VmcsField = C.VMCS_HOST_IA32_EFER
	VMCS_HOST_IA32_PERF_GLOBAL_CTRL  VmcsField = C.VMCS_HOST_IA32_PERF_GLOBAL_CTRL
	VMCS_CTRL_PIN_BASED              VmcsField = C.VMCS_CTRL_PIN_BASED
	VMCS_CTRL_CPU_BASED              VmcsField = C.VMCS_CTRL_CPU_BASED
	VMCS_CTRL_EXC_BITMAP             VmcsField = C.VMCS_CTRL_EXC_BITMAP
	VMCS_CTRL_PF_ERROR_MASK          VmcsField = C.VMCS_CTRL_PF_ERROR_MASK
	VMCS_CTRL_PF_ERROR_MATCH         VmcsField = C.VMCS_CTRL_PF_ERROR_MATCH
	VMCS_CTRL_CR3_COUNT              VmcsField = C.VMCS_CTRL_CR3_COUNT
	VMCS_CTRL_VMEXIT_CONTROLS        VmcsField = C.VMCS_CTRL_VMEXIT_CONTROLS
	VMCS_CTRL_VMEXIT_MSR_STORE_COUNT VmcsField = C.VMCS_CTRL_VMEXIT_MSR_STORE_COUNT
	VMCS_CTRL_VMEXIT_MSR_LOAD_COUNT  VmcsField = C.VMCS_CTRL_VMEXIT_MSR_LOAD_COUNT
	VMCS_CTRL_VMENTRY_CONTROLS       VmcsField = C.VMCS_CTRL_VMENTRY_CONTROLS
	VMCS_CTRL_VMENTRY_MSR_LOAD_COUNT VmcsField = C.VMCS_CTRL_VMENTRY_MSR_LOAD_COUNT
	VMCS_CTRL_VMENTRY_IRQ_INFO       VmcsField = C.VMCS_CTRL_VMENTRY_IRQ_INFO
	VMCS_CTRL_VMENTRY_EXC_ERROR      VmcsField = C.VMCS_CTRL_VMENTRY_EXC_ERROR
	VMCS_CTRL_VMENTRY_INSTR_LEN      VmcsField = C.VMCS_CTRL_VMENTRY_INSTR_LEN
	VMCS_CTRL_TPR_THRESHOLD          VmcsField = C.VMCS_CTRL_TPR_THRESHOLD
	VMCS_CTRL_CPU_BASED2             VmcsField = C.VMCS_CTRL_CPU_BASED2
	VMCS_CTRL_PLE_GAP                VmcsField = C.VMCS_CTRL_PLE_GAP
	VMCS_CTRL_PLE_WINDOW             VmcsField = C.VMCS_CTRL_PLE_WINDOW
	VMCS_RO_INSTR_ERROR              VmcsField = C.VMCS_RO_INSTR_ERROR
	VMCS_RO_EXIT_REASON              VmcsField = C.VMCS_RO_EXIT_REASON
	VMCS_RO_VMEXIT_IRQ_INFO          VmcsField = C.VMCS_RO_VMEXIT_IRQ_INFO
	VMCS_RO_VMEXIT_IRQ_ERROR         VmcsField = C.VMCS_RO_VMEXIT_IRQ_ERROR
	VMCS_RO_IDT_VECTOR_INFO          VmcsField = C.VMCS_RO_IDT_VECTOR_INFO
	VMCS_RO_IDT_VECTOR_ERROR         VmcsField = C.VMCS_RO_IDT_VECTOR_ERROR
	VMCS_RO_VMEXIT_INSTR_LEN         VmcsField = C.VMCS_RO_VMEXIT_INSTR_LEN
	VMCS_RO_VMX_INSTR_INFO           VmcsField = C.VMCS_RO_VMX_INSTR_INFO
	VMCS_GUEST_ES_LIMIT              VmcsField = C.VMCS_GUEST_ES_LIMIT
	VMCS_GUEST_CS_LIMIT              VmcsField = C.VMCS_GUEST_CS_LIMIT
	VMCS_GUEST_SS_LIMIT              VmcsField = C.VMCS_GUEST_SS_LIMIT
	VMCS_GUEST_DS_LIMIT              VmcsField = C.VMCS_GUEST_DS_LIMIT
	VMCS_GUEST_FS_LIMIT              VmcsField = C.VMCS_GUEST_FS_LIMIT
	VMCS_GUEST_GS_LIMIT              VmcsField = C.VMCS_GUEST_GS_LIMIT
	VMCS_GUEST_LDTR_LIMIT            VmcsField = C.VMCS_GUEST_LDTR_LIMIT
	VMCS_GUEST_TR_LIMIT              VmcsField = C.VMCS_GUEST_TR_LIMIT
	VMCS_GUEST_GDTR_LIMIT            VmcsField = C.VMCS_GUEST_GDTR_LIMIT
	VMCS_GUEST_IDTR_LIMIT            VmcsField = C.VMCS_GUEST_IDTR_LIMIT
	VMCS_GUEST_ES_AR                 VmcsField = C.VMCS_GUEST_ES_AR
	VMCS_GUEST_CS_AR                 VmcsField = C.VMCS_GUEST_CS_AR
	VMCS_GUEST_SS_AR                 VmcsField = C.VMCS_GUEST_SS_AR
	VMCS_GUEST_DS_AR                 VmcsField = C.VMCS_GUEST_DS_AR
	VMCS_GUEST_FS_AR                 VmcsField = C.VMCS_GUEST_FS_AR
	VMCS_GUEST_GS_AR                 VmcsField = C.VMCS_GUEST_GS_AR
	VMCS_GUEST_LDTR_AR               VmcsField = C.VMCS_GUEST_LDTR_AR
	VMCS_GUEST_TR_AR                 VmcsField = C.VMCS_GUEST_TR_AR
	VMCS_GUEST_IGNORE_IRQ            VmcsField = C.VMCS_GUEST_IGNORE_IRQ
	VMCS_GUEST_ACTIVITY_STATE        VmcsField = C.VMCS_GUEST_ACTIVITY_STATE
	VMCS_GUEST_SMBASE                VmcsField = C.VMCS_GUEST_SMBASE
	VMCS_GUEST_IA32_SYSENTER_CS      VmcsField = C.VMCS_GUEST_IA32_SYSENTER_CS
	VMCS_GUEST_VMX_TIMER_VALUE       VmcsField = C.VMCS_GUEST_VMX_TIMER_VALUE
	VMCS_HOST_IA32_SYSENTER_CS       VmcsField = C.VMCS_HOST_IA32_SYSENTER_CS
	VMCS_CTRL_CR0_MASK               VmcsField = C.VMCS_CTRL_CR0_MASK
	VMCS_CTRL_CR4_MASK               VmcsField = C.VMCS_CTRL_CR4_MASK
	VMCS_CTRL_CR0_SHADOW             VmcsField = C.VMCS_CTRL_CR0_SHADOW
	VMCS_CTRL_CR4_SHADOW             VmcsField = C.VMCS_CTRL_CR4_SHADOW
	VMCS_CTRL_CR3_VALUE0             VmcsField = C.VMCS_CTRL_CR3_VALUE0
	VMCS_CTRL_CR3_VALUE1             VmcsField = C.VMCS_CTRL_CR3_VALUE1
	VMCS_CTRL_CR3_VALUE2             VmcsField = C.VMCS_CTRL_CR3_VALUE2
	VMCS_CTRL_CR3_VALUE3             VmcsField = C.VMCS_CTRL_CR3_VALUE3
	VMCS_RO_EXIT_QUALIFIC            VmcsField = C.VMCS_RO_EXIT_QUALIFIC
	VMCS_RO_IO_RCX                   VmcsField = C.VMCS_RO_IO_RCX
	VMCS_RO_IO_RSI                   VmcsField = C.VMCS_RO_IO_RSI
	VMCS_RO_IO_RDI                   VmcsField = C.VMCS_RO_IO_RDI
	VMCS_RO_IO_RIP                   VmcsField = C.VMCS_RO_IO_RIP
	VMCS_RO_GUEST_LIN_ADDR           VmcsField = C.VMCS_RO_GUEST_LIN_ADDR
	VMCS_GUEST_CR0                   VmcsField = C.VMCS_GUEST_CR0
	VMCS_GUEST_CR3                   VmcsField = C.VMCS_GUEST_CR3
	VMCS_GUEST_CR4                   VmcsField = C.VMCS_GUEST_CR4
	VMCS_GUEST_ES_BASE               VmcsField = C.VMCS_GUEST_ES_BASE
	VMCS_GUEST_CS_BASE               VmcsField = C.VMCS_GUEST_CS_BASE
	VMCS_GUEST_SS_BASE               VmcsField = C.VMCS_GUEST_SS_BASE
	VMCS_GUEST_DS_BASE               VmcsField = C.VMCS_GUEST_DS_BASE
	VMCS_GUEST_FS_BASE               VmcsField = C.VMCS_GUEST_FS_BASE
	VMCS_GUEST_GS_BASE               VmcsField = C.VMCS_GUEST_GS_BASE
	VMCS_GUEST_LDTR_BASE             VmcsField = C.VMCS_GUEST_LDTR_BASE
	VMCS_GUEST_TR_BASE               VmcsField = C.VMCS_GUEST_TR_BASE
	VMCS_GUEST_GDTR_BASE             VmcsField = C.VMCS_GUEST_GDTR_BASE
	VMCS_GUEST_IDTR_BASE             VmcsField = C.VMCS_GUEST_IDTR_BASE
	VMCS_GUEST_DR7                   VmcsField = C.VMCS_GUEST_DR7
	VMCS_GUEST_RSP                   VmcsField = C.VMCS_GUEST_RSP
	VMCS_GUEST_RIP                   VmcsField = C.VMCS_GUEST_RIP
	VMCS_GUEST_RFLAGS                VmcsField = C.VMCS_GUEST_RFLAGS
	VMCS_GUEST_DEBUG_EXC             VmcsField = C.VMCS_GUEST_DEBUG_EXC
	VMCS_GUEST_SYSENTER_ESP          VmcsField = C.VMCS_GUEST_SYSENTER_ESP
	VMCS_GUEST_SYSENTER_EIP          VmcsField = C.VMCS_GUEST_SYSENTER_EIP
	VMCS_HOST_CR0                    VmcsField = C.VMCS_HOST_CR0
	VMCS_HOST_CR3                    VmcsField = C.VMCS_HOST_CR3
	VMCS_HOST_CR4                    VmcsField = C.VMCS_HOST_CR4
	VMCS_HOST_FS_BASE                VmcsField = C.VMCS_HOST_FS_BASE
	VMCS_HOST_GS_BASE                VmcsField = C.VMCS_HOST_GS_BASE
	VMCS_HOST_TR_BASE                VmcsField = C.VMCS_HOST_TR_BASE
	VMCS_HOST_GDTR_BASE              VmcsField = C.VMCS_HOST_GDTR_BASE
	VMCS_HOST_IDTR_BASE              VmcsField = C.VMCS_HOST_IDTR_BASE
	VMCS_HOST_IA32_SYSENTER_ESP      VmcsField = C.VMCS_HOST_IA32_SYSENTER_ESP
	VMCS_HOST_IA32_SYSENTER_EIP      VmcsField = C.VMCS_HOST_IA32_SYSENTER_EIP
	VMCS_HOST_RSP                    VmcsField = C.VMCS_HOST_RSP
	VMCS_HOST_RIP                    VmcsField = C.VMCS_HOST_RIP
	VMCS_MAX                         VmcsField = C.VMCS_MAX
)

// Basic exit reasons as read from VMCS_RO_EXIT_REASON.
const (
	VMX_REASON_EXC_NMI           VmxReason = C.VMX_REASON_EXC_NMI
	VMX_REASON_IRQ               VmxReason = C.VMX_REASON_IRQ
	VMX_REASON_TRIPLE_FAULT      VmxReason = C.VMX_REASON_TRIPLE_FAULT
	VMX_REASON_INIT              VmxReason = C.VMX_REASON_INIT
	VMX_REASON_SIPI              VmxReason = C.VMX_REASON_SIPI
	VMX_REASON_IO_SMI            VmxReason = C.VMX_REASON_IO_SMI
	VMX_REASON_OTHER_SMI         VmxReason = C.VMX_REASON_OTHER_SMI
	VMX_REASON_IRQ_WND           VmxReason = C.VMX_REASON_IRQ_WND
	VMX_REASON_VIRTUAL_NMI_WND   VmxReason = C.VMX_REASON_VIRTUAL_NMI_WND
	VMX_REASON_TASK              VmxReason = C.VMX_REASON_TASK
	VMX_REASON_CPUID             VmxReason = C.VMX_REASON_CPUID
	VMX_REASON_GETSEC            VmxReason = C.VMX_REASON_GETSEC
	VMX_REASON_HLT               VmxReason = C.VMX_REASON_HLT
	VMX_REASON_INVD              VmxReason = C.VMX_REASON_INVD
	VMX_REASON_INVLPG            VmxReason = C.VMX_REASON_INVLPG
	VMX_REASON_RDPMC             VmxReason = C.VMX_REASON_RDPMC
	VMX_REASON_RDTSC             VmxReason = C.VMX_REASON_RDTSC
	VMX_REASON_RSM               VmxReason = C.VMX_REASON_RSM
	VMX_REASON_VMCALL            VmxReason = C.VMX_REASON_VMCALL
	VMX_REASON_VMCLEAR           VmxReason = C.VMX_REASON_VMCLEAR
	VMX_REASON_VMLAUNCH          VmxReason = C.VMX_REASON_VMLAUNCH
	VMX_REASON_VMPTRLD           VmxReason = C.VMX_REASON_VMPTRLD
	VMX_REASON_VMPTRST           VmxReason = C.VMX_REASON_VMPTRST
	VMX_REASON_VMREAD            VmxReason = C.VMX_REASON_VMREAD
	VMX_REASON_VMRESUME          VmxReason = C.VMX_REASON_VMRESUME
	VMX_REASON_VMWRITE           VmxReason = C.VMX_REASON_VMWRITE
	VMX_REASON_VMOFF             VmxReason = C.VMX_REASON_VMOFF
	VMX_REASON_VMON              VmxReason = C.VMX_REASON_VMON
	VMX_REASON_MOV_CR            VmxReason = C.VMX_REASON_MOV_CR
	VMX_REASON_MOV_DR            VmxReason = C.VMX_REASON_MOV_DR
	VMX_REASON_IO                VmxReason = C.VMX_REASON_IO
	VMX_REASON_RDMSR             VmxReason = C.VMX_REASON_RDMSR
	VMX_REASON_WRMSR             VmxReason = C.VMX_REASON_WRMSR
	VMX_REASON_VMENTRY_GUEST     VmxReason = C.VMX_REASON_VMENTRY_GUEST
	VMX_REASON_VMENTRY_MSR       VmxReason = C.VMX_REASON_VMENTRY_MSR
	VMX_REASON_MWAIT             VmxReason = C.VMX_REASON_MWAIT
	VMX_REASON_MTF               VmxReason = C.VMX_REASON_MTF
	VMX_REASON_MONITOR           VmxReason = C.VMX_REASON_MONITOR
	VMX_REASON_PAUSE             VmxReason = C.VMX_REASON_PAUSE
	VMX_REASON_VMENTRY_MC        VmxReason = C.VMX_REASON_VMENTRY_MC
	VMX_REASON_TPR_THRESHOLD     VmxReason = C.VMX_REASON_TPR_THRESHOLD
	VMX_REASON_APIC_ACCESS       VmxReason = C.VMX_REASON_APIC_ACCESS
	VMX_REASON_VIRTUALIZED_EOI   VmxReason = C.VMX_REASON_VIRTUALIZED_EOI
	VMX_REASON_GDTR_IDTR         VmxReason = C.VMX_REASON_GDTR_IDTR
	VMX_REASON_LDTR_TR           VmxReason = C.VMX_REASON_LDTR_TR
	VMX_REASON_EPT_VIOLATION     VmxReason = C.VMX_REASON_EPT_VIOLATION
	VMX_REASON_EPT_MISCONFIG     VmxReason = C.VMX_REASON_EPT_MISCONFIG
	VMX_REASON_EPT_INVEPT        VmxReason = C.VMX_REASON_EPT_INVEPT
	VMX_REASON_RDTSCP            VmxReason = C.VMX_REASON_RDTSCP
	VMX_REASON_VMX_TIMER_EXPIRED VmxReason = C.VMX_REASON_VMX_TIMER_EXPIRED
	VMX_REASON_INVVPID           VmxReason = C.VMX_REASON_INVVPID
	VMX_REASON_WBINVD            VmxReason = C.VMX_REASON_WBINVD
	VMX_REASON_XSETBV            VmxReason = C.VMX_REASON_XSETBV
	VMX_REASON_APIC_WRITE        VmxReason = C.VMX_REASON_APIC_WRITE
	VMX_REASON_RDRAND            VmxReason = C.VMX_REASON_RDRAND
	VMX_REASON_INVPCID           VmxReason = C.VMX_REASON_INVPCID
	VMX_REASON_VMFUNC            VmxReason = C.VMX_REASON_VMFUNC
	VMX_REASON_RDSEED            VmxReason = C.VMX_REASON_RDSEED
	VMX_REASON_XSAVES            VmxReason = C.VMX_REASON_XSAVES
	VMX_REASON_XRSTORS           VmxReason = C.VMX_REASON_XRSTORS
)

// VM-entry and VM-exit interruption information bits.
const (
	IRQ_INFO_EXT_IRQ       IrqInfo = C.IRQ_INFO_EXT_IRQ
	IRQ_INFO_NMI           IrqInfo = C.IRQ_INFO_NMI
	IRQ_INFO_HARD_EXC      IrqInfo = C.IRQ_INFO_HARD_EXC
	IRQ_INFO_SOFT_IRQ      IrqInfo = C.IRQ_INFO_SOFT_IRQ
	IRQ_INFO_PRIV_SOFT_EXC IrqInfo = C.IRQ_INFO_PRIV_SOFT_EXC
	IRQ_INFO_SOFT_EXC      IrqInfo = C.IRQ_INFO_SOFT_EXC
	IRQ_INFO_ERROR_VALID   IrqInfo = C.IRQ_INFO_ERROR_VALID
	IRQ_INFO_VALID         IrqInfo = C.IRQ_INFO_VALID
)

// ---- VM (hv.h) ----

// VmCreate creates the VM of the current process.
func VmCreate(options VmOptions) Return {
	return Return(C.hv_vm_create(C.hv_vm_options_t(options)))
}

func VmDestroy() Return {
	return Return(C.hv_vm_destroy())
}

// GetCapability needs a VM to exist in the process.
func GetCapability(capability Capability) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_capability(C.hv_capability_t(capability), &v)
	return uint64(v), Return(ret)
}

// VmMap maps size bytes of host memory at uva into the default address
// space. The memory must stay valid and page aligned until it is unmapped.
func VmMap(uva unsafe.Pointer, gpa GPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_map(C.hv_uvaddr_t(uva), C.hv_gpaddr_t(gpa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

func VmUnmap(gpa GPA, size uintptr) Return {
	return Return(C.hv_vm_unmap(C.hv_gpaddr_t(gpa), C.size_t(size)))
}

func VmProtect(gpa GPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_protect(C.hv_gpaddr_t(gpa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

// VmSpaceCreate creates an additional guest address space (macOS 10.15).
func VmSpaceCreate() (Space, Return) {
	var asid C.hv_vm_space_t
	ret := C.hv_vm_space_create(&asid)
	return Space(asid), Return(ret)
}

func VmSpaceDestroy(asid Space) Return {
	return Return(C.hv_vm_space_destroy(C.hv_vm_space_t(asid)))
}

func VmMapSpace(asid Space, uva unsafe.Pointer, gpa GPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_map_space(C.hv_vm_space_t(asid), C.hv_uvaddr_t(uva), C.hv_gpaddr_t(gpa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

func VmUnmapSpace(asid Space, gpa GPA, size uintptr) Return {
	return Return(C.hv_vm_unmap_space(C.hv_vm_space_t(asid), C.hv_gpaddr_t(gpa), C.size_t(size)))
}

func VmProtectSpace(asid Space, gpa GPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_protect_space(C.hv_vm_space_t(asid), C.hv_gpaddr_t(gpa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

// VmSyncTsc sets the guest TSC of every vCPU to tsc.
func VmSyncTsc(tsc uint64) Return {
	return Return(C.hv_vm_sync_tsc(C.uint64_t(tsc)))
}

// ---- vCPU (hv.h) ----

// VcpuCreate creates a vCPU owned by the calling thread. The caller must lock
// the goroutine to its OS thread for the lifetime of the vCPU.
func VcpuCreate() (VCPU, Return) {
	var vcpu C.hv_vcpuid_t
	ret := C.hv_vcpu_create(&vcpu, C.hv_vcpu_options_t(HV_VCPU_DEFAULT))
	return VCPU(vcpu), Return(ret)
}

func VcpuDestroy(vcpu VCPU) Return {
	return Return(C.hv_vcpu_destroy(C.hv_vcpuid_t(vcpu)))
}

func VcpuSetSpace(vcpu VCPU, asid Space) Return {
	return Return(C.hv_vcpu_set_space(C.hv_vcpuid_t(vcpu), C.hv_vm_space_t(asid)))
}

// VcpuRun may return on causes external to the guest; VcpuRunUntil with
// HV_DEADLINE_FOREVER avoids those spurious exits.
func VcpuRun(vcpu VCPU) Return {
	return Return(C.hv_vcpu_run(C.hv_vcpuid_t(vcpu)))
}

// VcpuRunUntil runs until the next exit or deadline in mach absolute time units.
func VcpuRunUntil(vcpu VCPU, deadline uint64) Return {
	return Return(C.hv_vcpu_run_until(C.hv_vcpuid_t(vcpu), C.uint64_t(deadline)))
}

func VcpuFlush(vcpu VCPU) Return {
	return Return(C.hv_vcpu_flush(C.hv_vcpuid_t(vcpu)))
}

func VcpuInvalidateTlb(vcpu VCPU) Return {
	return Return(C.hv_vcpu_invalidate_tlb(C.hv_vcpuid_t(vcpu)))
}

// VcpuInterrupt forces an immediate VMEXIT of the given vCPUs.
func VcpuInterrupt(vcpus []VCPU) Return {
	if len(vcpus) == 0 {
		return HV_SUCCESS
	}
	return Return(C.hv_vcpu_interrupt((*C.hv_vcpuid_t)(unsafe.Pointer(&vcpus[0])), C.uint(len(vcpus))))
}

// VcpuGetExecTime returns the cumulative execution time in nanoseconds.
func VcpuGetExecTime(vcpu VCPU) (uint64, Return) {
	var t C.uint64_t
	ret := C.hv_vcpu_get_exec_time(C.hv_vcpuid_t(vcpu), &t)
	return uint64(t), Return(ret)
}

func VcpuEnableNativeMsr(vcpu VCPU, msr uint32, enable bool) Return {
	return Return(C.hv_vcpu_enable_native_msr(C.hv_vcpuid_t(vcpu), C.uint32_t(msr), C.bool(enable)))
}

func VcpuReadMsr(vcpu VCPU, msr uint32) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vcpu_read_msr(C.hv_vcpuid_t(vcpu), C.uint32_t(msr), &v)
	return uint64(v), Return(ret)
}

func VcpuWriteMsr(vcpu VCPU, msr uint32, value uint64) Return {
	return Return(C.hv_vcpu_write_msr(C.hv_vcpuid_t(vcpu), C.uint32_t(msr), C.uint64_t(value)))
}

func VcpuReadRegister(vcpu VCPU, reg X86Reg) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vcpu_read_register(C.hv_vcpuid_t(vcpu), C.hv_x86_reg_t(reg), &v)
	return uint64(v), Return(ret)
}

func VcpuWriteRegister(vcpu VCPU, reg X86Reg, value uint64) Return {
	return Return(C.hv_vcpu_write_register(C.hv_vcpuid_t(vcpu), C.hv_x86_reg_t(reg), C.uint64_t(value)))
}

// VcpuReadFpstate copies the XSAVE area of the vCPU into buf. Its layout and
// size are defined by the host processor.
func VcpuReadFpstate(vcpu VCPU, buf []byte) Return {
	if len(buf) == 0 {
		return HV_BAD_ARGUMENT
	}
	return Return(C.hv_vcpu_read_fpstate(C.hv_vcpuid_t(vcpu), unsafe.Pointer(&buf[0]), C.size_t(len(buf))))
}

func VcpuWriteFpstate(vcpu VCPU, buf []byte) Return {
	if len(buf) == 0 {
		return HV_BAD_ARGUMENT
	}
	return Return(C.hv_vcpu_write_fpstate(C.hv_vcpuid_t(vcpu), unsafe.Pointer(&buf[0]), C.size_t(len(buf))))
}

// ---- VMX (hv_vmx.h) ----

// VmxReadCapability returns a VMX capability word of the host processor.
func VmxReadCapability(field VmxCapability) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vmx_read_capability(C.hv_vmx_capability_t(field), &v)
	return uint64(v), Return(ret)
}

func VmxVcpuReadVmcs(vcpu VCPU, field VmcsField) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vmx_vcpu_read_vmcs(C.hv_vcpuid_t(vcpu), C.uint32_t(field), &v)
	return uint64(v), Return(ret)
}

func VmxVcpuWriteVmcs(vcpu VCPU, field VmcsField, value uint64) Return {
	return Return(C.hv_vmx_vcpu_write_vmcs(C.hv_vcpuid_t(vcpu), C.uint32_t(field), C.uint64_t(value)))
}

func VmxVcpuReadShadowVmcs(vcpu VCPU, field VmcsField) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vmx_vcpu_read_shadow_vmcs(C.hv_vcpuid_t(vcpu), C.uint32_t(field), &v)
	return uint64(v), Return(ret)
}

func VmxVcpuWriteShadowVmcs(vcpu VCPU, field VmcsField, value uint64) Return {
	return Return(C.hv_vmx_vcpu_write_shadow_vmcs(C.hv_vcpuid_t(vcpu), C.uint32_t(field), C.uint64_t(value)))
}

func VmxVcpuSetShadowAccess(vcpu VCPU, field VmcsField, flags ShadowFlags) Return {
	return Return(C.hv_vmx_vcpu_set_shadow_access(C.hv_vcpuid_t(vcpu), C.uint32_t(field), C.hv_shadow_flags_t(flags)))
}

// VmxVcpuSetApicAddress sets the guest physical address of the virtual APIC page.
func VmxVcpuSetApicAddress(vcpu VCPU, gpa GPA) Return {
	return Return(C.hv_vmx_vcpu_set_apic_address(C.hv_vcpuid_t(vcpu), C.hv_gpaddr_t(gpa)))
}

