//go:build darwin

package cpustats

import (
	"fmt"
	"unsafe"

	"github.com/danpilch/cpustat/pkg/clockticks"
)

/*
#include <mach/mach.h>
#include <mach/processor_info.h>
#include <mach/mach_host.h>
*/
import "C"

// Read returns aggregate user and system CPU time since boot, summed
// over all logical cores reported by Mach host_processor_info.
func Read() (CPUStats, error) {
	ticks, err := clockticks.PerSecond()
	if err != nil {
		return CPUStats{}, err
	}

	var (
		cpuCount C.natural_t
		cpuInfo  *C.integer_t
		infoLen  C.mach_msg_type_number_t
	)

	host := C.mach_host_self()
	ret := C.host_processor_info(host, C.PROCESSOR_CPU_LOAD_INFO, &cpuCount,
		(*C.processor_info_array_t)(unsafe.Pointer(&cpuInfo)), &infoLen)
	if ret != C.KERN_SUCCESS {
		return CPUStats{}, fmt.Errorf("host_processor_info failed: kern return %d", ret)
	}

	// Copy the per-core records out before releasing the kernel
	// buffer; the view must never outlive the vm_deallocate below.
	view := unsafe.Slice((*int32)(unsafe.Pointer(cpuInfo)), int(infoLen))
	cores := make([]coreTicks, 0, int(cpuCount))
	for i := 0; i < int(cpuCount); i++ {
		off := i * int(C.CPU_STATE_MAX)
		cores = append(cores, coreTicks{
			User:   int64(view[off+int(C.CPU_STATE_USER)]),
			System: int64(view[off+int(C.CPU_STATE_SYSTEM)]),
			Idle:   int64(view[off+int(C.CPU_STATE_IDLE)]),
			Nice:   int64(view[off+int(C.CPU_STATE_NICE)]),
		})
	}

	ret = C.vm_deallocate(C.mach_task_self_,
		C.vm_address_t(uintptr(unsafe.Pointer(cpuInfo))),
		C.vm_size_t(infoLen)*C.vm_size_t(unsafe.Sizeof(C.integer_t(0))))
	if ret != C.KERN_SUCCESS {
		return CPUStats{}, fmt.Errorf("vm_deallocate failed: kern return %d", ret)
	}

	ret = C.mach_port_deallocate(C.mach_task_self_, host)
	if ret != C.KERN_SUCCESS {
		return CPUStats{}, fmt.Errorf("mach_port_deallocate failed: kern return %d", ret)
	}

	user, system, err := sumCores(cores)
	if err != nil {
		return CPUStats{}, err
	}

	return CPUStats{
		User:   ticksToDuration(user, ticks),
		System: ticksToDuration(system, ticks),
	}, nil
}
