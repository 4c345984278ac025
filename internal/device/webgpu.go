package device

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Verify that WebGPU implements Transfer.
var _ Transfer = (*WebGPU)(nil)

// WebGPU is a Transfer for engines that stage tensors in WebGPU buffers.
// The buffer encoding of a Pointer must carry a *wgpu.Buffer; WebGPU exposes
// no stable numeric device addresses, so the address encoding is rejected.
type WebGPU struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	owned    bool
}

// NewWebGPU initializes a dedicated WebGPU device for transfers.
// Returns an error if WebGPU is not available or initialization fails.
func NewWebGPU() (transfer *WebGPU, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			transfer = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	dev, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := dev.GetQueue()
	if queue == nil {
		dev.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &WebGPU{
		instance: instance,
		adapter:  adapter,
		device:   dev,
		queue:    queue,
		owned:    true,
	}, nil
}

// NewWebGPUFrom wraps an engine-owned device and queue. The caller keeps
// ownership; Close is a no-op for wrapped devices.
func NewWebGPUFrom(dev *wgpu.Device, queue *wgpu.Queue) *WebGPU {
	return &WebGPU{device: dev, queue: queue}
}

// CopyToHost reads len(dst) bytes from a GPU buffer into dst.
// Storage buffers can't be mapped directly, so the copy goes through a
// staging buffer: GPU copy into MAP_READ|COPY_DST, then a mapped read.
func (w *WebGPU) CopyToHost(dst []byte, src Pointer) error {
	if len(dst) == 0 {
		return nil
	}
	buf, ok := src.Buffer().(*wgpu.Buffer)
	if !ok {
		return fmt.Errorf("webgpu: source pointer does not carry a GPU buffer")
	}
	size := uint64(len(dst))

	stagingBuffer := w.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := w.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(buf, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	w.queue.Submit(cmdBuffer)

	if err := stagingBuffer.MapAsync(w.device, wgpu.MapModeRead, 0, size); err != nil {
		return fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(dst, mappedSlice)

	stagingBuffer.Unmap()

	return nil
}

// Close releases the device chain when this transfer owns it.
func (w *WebGPU) Close() {
	if !w.owned {
		return
	}
	if w.device != nil {
		w.device.Release()
	}
	if w.adapter != nil {
		w.adapter.Release()
	}
	if w.instance != nil {
		w.instance.Release()
	}
}
