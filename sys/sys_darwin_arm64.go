//go:build darwin && arm64

package sys

/*
#cgo darwin LDFLAGS: -framework Hypervisor
#include <string.h>
#include "hypervisor.h"

static hv_return_t go_hv_vm_create(void) {
	return hv_vm_create(NULL);
}

static hv_return_t go_hv_vcpu_create(hv_vcpu_t *vcpu, hv_vcpu_exit_t **exit) {
	return hv_vcpu_create(vcpu, exit, NULL);
}

// hv_simd_fp_uchar16_t is a clang vector type that cgo cannot represent, so
// SIMD values cross the boundary as 16 plain bytes.
static hv_return_t go_hv_vcpu_get_simd_fp_reg(hv_vcpu_t vcpu, hv_simd_fp_reg_t reg, uint8_t *out) {
	hv_simd_fp_uchar16_t v;
	hv_return_t ret = hv_vcpu_get_simd_fp_reg(vcpu, reg, &v);
	if (ret == HV_SUCCESS) {
		memcpy(out, &v, sizeof(v));
	}
	return ret;
}

static hv_return_t go_hv_vcpu_set_simd_fp_reg(hv_vcpu_t vcpu, hv_simd_fp_reg_t reg, const uint8_t *in) {
	hv_simd_fp_uchar16_t v;
	memcpy(&v, in, sizeof(v));
	return hv_vcpu_set_simd_fp_reg(vcpu, reg, v);
}
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// VCPU is a vCPU instance id (hv_vcpu_t).
type VCPU uint64

// IPA is a guest intermediate physical address (hv_ipa_t).
type IPA uint64

// MemoryFlags is a guest memory permission mask (hv_memory_flags_t).
type MemoryFlags uint64

// Reg selects a general purpose register (hv_reg_t).
type Reg uint32

// SimdFpReg selects a SIMD & FP register (hv_simd_fp_reg_t).
type SimdFpReg uint32

// SysReg selects a system register (hv_sys_reg_t).
type SysReg uint16

// InterruptType selects the interrupt line (hv_interrupt_type_t).
type InterruptType uint32

// ExitReason is the reason hv_vcpu_run returned (hv_exit_reason_t).
type ExitReason uint32

// SimdFp is the value of a 128-bit SIMD & FP register, little endian.
type SimdFp [16]byte

// VcpuExitException mirrors hv_vcpu_exit_exception_t.
type VcpuExitException struct {
	Syndrome        uint64
	VirtualAddress  uint64
	PhysicalAddress IPA
}

// VcpuExit mirrors hv_vcpu_exit_t, including the padding after Reason.
// The framework rewrites it on every return from VcpuRun.
type VcpuExit struct {
	Reason    ExitReason
	_         uint32
	Exception VcpuExitException
}

const (
	HV_MEMORY_READ  MemoryFlags = C.HV_MEMORY_READ
	HV_MEMORY_WRITE MemoryFlags = C.HV_MEMORY_WRITE
	HV_MEMORY_EXEC  MemoryFlags = C.HV_MEMORY_EXEC
)

const (
	HV_EXIT_REASON_CANCELED         ExitReason = C.HV_EXIT_REASON_CANCELED
	HV_EXIT_REASON_EXCEPTION        ExitReason = C.HV_EXIT_REASON_EXCEPTION
	HV_EXIT_REASON_VTIMER_ACTIVATED ExitReason = C.HV_EXIT_REASON_VTIMER_ACTIVATED
	HV_EXIT_REASON_UNKNOWN          ExitReason = C.HV_EXIT_REASON_UNKNOWN
)

const (
	HV_INTERRUPT_TYPE_IRQ InterruptType = C.HV_INTERRUPT_TYPE_IRQ
	HV_INTERRUPT_TYPE_FIQ InterruptType = C.HV_INTERRUPT_TYPE_FIQ
)

// General purpose register selectors (hv_reg_t).
const (
	HV_REG_X0   Reg = C.HV_REG_X0
	HV_REG_X1   Reg = C.HV_REG_X1
	HV_REG_X2   Reg = C.HV_REG_X2
	HV_REG_X3   Reg = C.HV_REG_X3
	HV_REG_X4   Reg = C.HV_REG_X4
	HV_REG_X5   Reg = C.HV_REG_X5
	HV_REG_X6   Reg = C.HV_REG_X6
	HV_REG_X7   Reg = C.HV_REG_X7
	HV_REG_X8   Reg = C.HV_REG_X8
	HV_REG_X9   Reg = C.HV_REG_X9
	HV_REG_X10  Reg = C.HV_REG_X10
	HV_REG_X11  Reg = C.HV_REG_X11
	HV_REG_X12  Reg = C.HV_REG_X12
	HV_REG_X13  Reg = C.HV_REG_X13
	HV_REG_X14  Reg = C.HV_REG_X14
	HV_REG_X15  Reg = C.HV_REG_X15
	HV_REG_X16  Reg = C.HV_REG_X16
	HV_REG_X17  Reg = C.HV_REG_X17
	HV_REG_X18  Reg = C.HV_REG_X18
	HV_REG_X19  Reg = C.HV_REG_X19
	HV_REG_X20  Reg = C.HV_REG_X20
	HV_REG_X21  Reg = C.HV_REG_X21
	HV_REG_X22  Reg = C.HV_REG_X22
	HV_REG_X23  Reg = C.HV_REG_X23
	HV_REG_X24  Reg = C.HV_REG_X24
	HV_REG_X25  Reg = C.HV_REG_X25
	HV_REG_X26  Reg = C.HV_REG_X26
	HV_REG_X27  Reg = C.HV_REG_X27
	HV_REG_X28  Reg = C.HV_REG_X28
	HV_REG_X29  Reg = C.HV_REG_X29
	HV_REG_X30  Reg = C.HV_REG_X30
	HV_REG_FP   Reg = C.HV_REG_FP
	HV_REG_LR   Reg = C.HV_REG_LR
	HV_REG_PC   Reg = C.HV_REG_PC
	HV_REG_FPCR Reg = C.HV_REG_FPCR
	HV_REG_FPSR Reg = C.HV_REG_FPSR
	HV_REG_CPSR Reg = C.HV_REG_CPSR
)

// SIMD & FP register selectors (hv_simd_fp_reg_t).
const (
	HV_SIMD_FP_REG_Q0  SimdFpReg = C.HV_SIMD_FP_REG_Q0
	HV_SIMD_FP_REG_Q1  SimdFpReg = C.HV_SIMD_FP_REG_Q1
	HV_SIMD_FP_REG_Q2  SimdFpReg = C.HV_SIMD_FP_REG_Q2
	HV_SIMD_FP_REG_Q3  SimdFpReg = C.HV_SIMD_FP_REG_Q3
	HV_SIMD_FP_REG_Q4  SimdFpReg = C.HV_SIMD_FP_REG_Q4
	HV_SIMD_FP_REG_Q5  SimdFpReg = C.HV_SIMD_FP_REG_Q5
	HV_SIMD_FP_REG_Q6  SimdFpReg = C.HV_SIMD_FP_REG_Q6
	HV_SIMD_FP_REG_Q7  SimdFpReg = C.HV_SIMD_FP_REG_Q7
	HV_SIMD_FP_REG_Q8  SimdFpReg = C.HV_SIMD_FP_REG_Q8
	HV_SIMD_FP_REG_Q9  SimdFpReg = C.HV_SIMD_FP_REG_Q9
	HV_SIMD_FP_REG_Q10 SimdFpReg = C.HV_SIMD_FP_REG_Q10
	HV_SIMD_FP_REG_Q11 SimdFpReg = C.HV_SIMD_FP_REG_Q11
	HV_SIMD_FP_REG_Q12 SimdFpReg = C.HV_SIMD_FP_REG_Q12
	HV_SIMD_FP_REG_Q13 SimdFpReg = C.HV_SIMD_FP_REG_Q13
	HV_SIMD_FP_REG_Q14 SimdFpReg = C.HV_SIMD_FP_REG_Q14
	HV_SIMD_FP_REG_Q15 SimdFpReg = C.HV_SIMD_FP_REG_Q15
	HV_SIMD_FP_REG_Q16 SimdFpReg = C.HV_SIMD_FP_REG_Q16
	HV_SIMD_FP_REG_Q17 SimdFpReg = C.HV_SIMD_FP_REG_Q17
	HV_SIMD_FP_REG_Q18 SimdFpReg = C.HV_SIMD_FP_REG_Q18
	HV_SIMD_FP_REG_Q19 SimdFpReg = C.HV_SIMD_FP_REG_Q19
	HV_SIMD_FP_REG_Q20 SimdFpReg = C.HV_SIMD_FP_REG_Q20
	HV_SIMD_FP_REG_Q21 SimdFpReg = C.HV_SIMD_FP_REG_Q21
	HV_SIMD_FP_REG_Q22 SimdFpReg = C.HV_SIMD_FP_REG_Q22
	HV_SIMD_FP_REG_Q23 SimdFpReg = C.HV_SIMD_FP_REG_Q23
	HV_SIMD_FP_REG_Q24 SimdFpReg = C.HV_SIMD_FP_REG_Q24
	HV_SIMD_FP_REG_Q25 SimdFpReg = C.HV_SIMD_FP_REG_Q25
	HV_SIMD_FP_REG_Q26 SimdFpReg = C.HV_SIMD_FP_REG_Q26
	HV_SIMD_FP_REG_Q27 SimdFpReg = C.HV_SIMD_FP_REG_Q27
	HV_SIMD_FP_REG_Q28 SimdFpReg = C.HV_SIMD_FP_REG_Q28
	HV_SIMD_FP_REG_Q29 SimdFpReg = C.HV_SIMD_FP_REG_Q29
	HV_SIMD_FP_REG_Q30 SimdFpReg = C.HV_SIMD_FP_REG_Q30
	HV_SIMD_FP_REG_Q31 SimdFpReg = C.HV_SIMD_FP_REG_Q31
)

// System register selectors (hv_sys_reg_t).
const (
	HV_SYS_REG_SP_EL0           SysReg = C.HV_SYS_REG_SP_EL0
	HV_SYS_REG_SP_EL1           SysReg = C.HV_SYS_REG_SP_EL1
	HV_SYS_REG_ELR_EL1          SysReg = C.HV_SYS_REG_ELR_EL1
	HV_SYS_REG_SPSR_EL1         SysReg = C.HV_SYS_REG_SPSR_EL1
	HV_SYS_REG_ESR_EL1          SysReg = C.HV_SYS_REG_ESR_EL1
	HV_SYS_REG_FAR_EL1          SysReg = C.HV_SYS_REG_FAR_EL1
	HV_SYS_REG_PAR_EL1          SysReg = C.HV_SYS_REG_PAR_EL1
	HV_SYS_REG_SCTLR_EL1        SysReg = C.HV_SYS_REG_SCTLR_EL1
	HV_SYS_REG_CPACR_EL1        SysReg = C.HV_SYS_REG_CPACR_EL1
	HV_SYS_REG_TCR_EL1          SysReg = C.HV_SYS_REG_TCR_EL1
	HV_SYS_REG_TTBR0_EL1        SysReg = C.HV_SYS_REG_TTBR0_EL1
	HV_SYS_REG_TTBR1_EL1        SysReg = C.HV_SYS_REG_TTBR1_EL1
	HV_SYS_REG_MAIR_EL1         SysReg = C.HV_SYS_REG_MAIR_EL1
	HV_SYS_REG_AMAIR_EL1        SysReg = C.HV_SYS_REG_AMAIR_EL1
	HV_SYS_REG_VBAR_EL1         SysReg = C.HV_SYS_REG_VBAR_EL1
	HV_SYS_REG_CONTEXTIDR_EL1   SysReg = C.HV_SYS_REG_CONTEXTIDR_EL1
	HV_SYS_REG_AFSR0_EL1        SysReg = C.HV_SYS_REG_AFSR0_EL1
	HV_SYS_REG_AFSR1_EL1        SysReg = C.HV_SYS_REG_AFSR1_EL1
	HV_SYS_REG_TPIDR_EL0        SysReg = C.HV_SYS_REG_TPIDR_EL0
	HV_SYS_REG_TPIDR_EL1        SysReg = C.HV_SYS_REG_TPIDR_EL1
	HV_SYS_REG_TPIDRRO_EL0      SysReg = C.HV_SYS_REG_TPIDRRO_EL0
	HV_SYS_REG_CNTKCTL_EL1      SysReg = C.HV_SYS_REG_CNTKCTL_EL1
	HV_SYS_REG_CNTV_CTL_EL0     SysReg = C.HV_SYS_REG_CNTV_CTL_EL0
	HV_SYS_REG_CNTV_CVAL_EL0    SysReg = C.HV_SYS_REG_CNTV_CVAL_EL0
	HV_SYS_REG_CSSELR_EL1       SysReg = C.HV_SYS_REG_CSSELR_EL1
	HV_SYS_REG_MDSCR_EL1        SysReg = C.HV_SYS_REG_MDSCR_EL1
	HV_SYS_REG_MIDR_EL1         SysReg = C.HV_SYS_REG_MIDR_EL1
	HV_SYS_REG_MPIDR_EL1        SysReg = C.HV_SYS_REG_MPIDR_EL1
	HV_SYS_REG_ID_AA64PFR0_EL1  SysReg = C.HV_SYS_REG_ID_AA64PFR0_EL1
	HV_SYS_REG_ID_AA64MMFR0_EL1 SysReg = C.HV_SYS_REG_ID_AA64MMFR0_EL1
	HV_SYS_REG_ID_AA64ISAR0_EL1 SysReg = C.HV_SYS_REG_ID_AA64ISAR0_EL1
)

func (r ExitReason) String() string {
	switch r {
	case HV_EXIT_REASON_CANCELED:
		return "canceled"
	case HV_EXIT_REASON_EXCEPTION:
		return "exception"
	case HV_EXIT_REASON_VTIMER_ACTIVATED:
		return "vtimer activated"
	case HV_EXIT_REASON_UNKNOWN:
		return "unknown"
	default:
		return "exit reason " + strconv.FormatUint(uint64(r), 10)
	}
}

// ---- VM ----

// VmCreate creates the VM of the current process with the default configuration.
func VmCreate() Return {
	return Return(C.go_hv_vm_create())
}

func VmDestroy() Return {
	return Return(C.hv_vm_destroy())
}

// VmMap maps size bytes of host memory at addr into the guest at ipa. The
// memory must stay valid and page aligned until it is unmapped.
func VmMap(addr unsafe.Pointer, ipa IPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_map(addr, C.hv_ipa_t(ipa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

func VmUnmap(ipa IPA, size uintptr) Return {
	return Return(C.hv_vm_unmap(C.hv_ipa_t(ipa), C.size_t(size)))
}

func VmProtect(ipa IPA, size uintptr, flags MemoryFlags) Return {
	return Return(C.hv_vm_protect(C.hv_ipa_t(ipa), C.size_t(size), C.hv_memory_flags_t(flags)))
}

// VmGetMaxVcpuCount requires macOS 13 or later.
func VmGetMaxVcpuCount() (uint32, Return) {
	var n C.uint32_t
	ret := C.hv_vm_get_max_vcpu_count(&n)
	return uint32(n), Return(ret)
}

// ---- vCPU ----

// VcpuCreate creates a vCPU owned by the calling thread. The caller must lock
// the goroutine to its OS thread for the lifetime of the vCPU.
func VcpuCreate() (VCPU, *VcpuExit, Return) {
	var (
		vcpu C.hv_vcpu_t
		exit *C.hv_vcpu_exit_t
	)
	ret := C.go_hv_vcpu_create(&vcpu, &exit)
	return VCPU(vcpu), (*VcpuExit)(unsafe.Pointer(exit)), Return(ret)
}

func VcpuDestroy(vcpu VCPU) Return {
	return Return(C.hv_vcpu_destroy(C.hv_vcpu_t(vcpu)))
}

// VcpuRun blocks until the next exit of the vCPU.
func VcpuRun(vcpu VCPU) Return {
	return Return(C.hv_vcpu_run(C.hv_vcpu_t(vcpu)))
}

// VcpusExit forces the given vCPUs out of VcpuRun.
func VcpusExit(vcpus []VCPU) Return {
	if len(vcpus) == 0 {
		return HV_SUCCESS
	}
	return Return(C.hv_vcpus_exit((*C.hv_vcpu_t)(unsafe.Pointer(&vcpus[0])), C.uint32_t(len(vcpus))))
}

// VcpuGetExecTime returns the cumulative execution time in nanoseconds.
func VcpuGetExecTime(vcpu VCPU) (uint64, Return) {
	var t C.uint64_t
	ret := C.hv_vcpu_get_exec_time(C.hv_vcpu_t(vcpu), &t)
	return uint64(t), Return(ret)
}

func VcpuGetReg(vcpu VCPU, reg Reg) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vcpu_get_reg(C.hv_vcpu_t(vcpu), C.hv_reg_t(reg), &v)
	return uint64(v), Return(ret)
}

func VcpuSetReg(vcpu VCPU, reg Reg, value uint64) Return {
	return Return(C.hv_vcpu_set_reg(C.hv_vcpu_t(vcpu), C.hv_reg_t(reg), C.uint64_t(value)))
}

func VcpuGetSimdFpReg(vcpu VCPU, reg SimdFpReg) (SimdFp, Return) {
	var v SimdFp
	ret := C.go_hv_vcpu_get_simd_fp_reg(C.hv_vcpu_t(vcpu), C.hv_simd_fp_reg_t(reg), (*C.uint8_t)(unsafe.Pointer(&v[0])))
	return v, Return(ret)
}

func VcpuSetSimdFpReg(vcpu VCPU, reg SimdFpReg, value SimdFp) Return {
	return Return(C.go_hv_vcpu_set_simd_fp_reg(C.hv_vcpu_t(vcpu), C.hv_simd_fp_reg_t(reg), (*C.uint8_t)(unsafe.Pointer(&value[0]))))
}

func VcpuGetSysReg(vcpu VCPU, reg SysReg) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vcpu_get_sys_reg(C.hv_vcpu_t(vcpu), C.hv_sys_reg_t(reg), &v)
	return uint64(v), Return(ret)
}

func VcpuSetSysReg(vcpu VCPU, reg SysReg, value uint64) Return {
	return Return(C.hv_vcpu_set_sys_reg(C.hv_vcpu_t(vcpu), C.hv_sys_reg_t(reg), C.uint64_t(value)))
}

func VcpuGetPendingInterrupt(vcpu VCPU, typ InterruptType) (bool, Return) {
	var pending C.bool
	ret := C.hv_vcpu_get_pending_interrupt(C.hv_vcpu_t(vcpu), C.hv_interrupt_type_t(typ), &pending)
	return bool(pending), Return(ret)
}

// VcpuSetPendingInterrupt is cleared by the framework after the next VcpuRun.
func VcpuSetPendingInterrupt(vcpu VCPU, typ InterruptType, pending bool) Return {
	return Return(C.hv_vcpu_set_pending_interrupt(C.hv_vcpu_t(vcpu), C.hv_interrupt_type_t(typ), C.bool(pending)))
}

func VcpuGetTrapDebugExceptions(vcpu VCPU) (bool, Return) {
	var v C.bool
	ret := C.hv_vcpu_get_trap_debug_exceptions(C.hv_vcpu_t(vcpu), &v)
	return bool(v), Return(ret)
}

func VcpuSetTrapDebugExceptions(vcpu VCPU, enable bool) Return {
	return Return(C.hv_vcpu_set_trap_debug_exceptions(C.hv_vcpu_t(vcpu), C.bool(enable)))
}

func VcpuGetTrapDebugRegAccesses(vcpu VCPU) (bool, Return) {
	var v C.bool
	ret := C.hv_vcpu_get_trap_debug_reg_accesses(C.hv_vcpu_t(vcpu), &v)
	return bool(v), Return(ret)
}

func VcpuSetTrapDebugRegAccesses(vcpu VCPU, enable bool) Return {
	return Return(C.hv_vcpu_set_trap_debug_reg_accesses(C.hv_vcpu_t(vcpu), C.bool(enable)))
}

// VcpuGetVtimerMask reports whether the virtual timer is masked. The
// framework masks it automatically on HV_EXIT_REASON_VTIMER_ACTIVATED.
func VcpuGetVtimerMask(vcpu VCPU) (bool, Return) {
	var v C.bool
	ret := C.hv_vcpu_get_vtimer_mask(C.hv_vcpu_t(vcpu), &v)
	return bool(v), Return(ret)
}

func VcpuSetVtimerMask(vcpu VCPU, masked bool) Return {
	return Return(C.hv_vcpu_set_vtimer_mask(C.hv_vcpu_t(vcpu), C.bool(masked)))
}

func VcpuGetVtimerOffset(vcpu VCPU) (uint64, Return) {
	var v C.uint64_t
	ret := C.hv_vcpu_get_vtimer_offset(C.hv_vcpu_t(vcpu), &v)
	return uint64(v), Return(ret)
}

func VcpuSetVtimerOffset(vcpu VCPU, offset uint64) Return {
	return Return(C.hv_vcpu_set_vtimer_offset(C.hv_vcpu_t(vcpu), C.uint64_t(offset)))
}
