//go:build opencl

package sim

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// OpenCLStepper evaluates the physics tick on an OpenCL device, one work item
// per cell. Coinciding destinations resolve in device scheduling order.
type OpenCLStepper struct {
	context     *cl.Context
	queue       *cl.CommandQueue
	program     *cl.Program
	stepKernel  *cl.Kernel
	clearKernel *cl.Kernel
	currColor   *cl.MemObject
	currMom     *cl.MemObject
	nextColor   *cl.MemObject
	nextMom     *cl.MemObject
	width       int
	height      int
	deviceName  string
}

const projectileKernelSource = `#define PROJECTILE 0xFFFF0000u

__kernel void clear_cells(
    const int size,
    __global uint* color,
    __global short2* momentum)
{
    int idx = get_global_id(0);
    if (idx >= size) {
        return;
    }
    color[idx] = 0u;
    momentum[idx] = (short2)(0, 0);
}

__kernel void projectile_step(
    const int width,
    const int height,
    const int gravity,
    __global const uint* curr_color,
    __global const short2* curr_momentum,
    __global uint* next_color,
    __global short2* next_momentum)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    if (curr_color[idx] != PROJECTILE) {
        return;
    }
    int row = idx / width;
    int col = idx % width;
    short2 m = curr_momentum[idx];
    int drow = clamp((int)m.x + gravity, -32768, 32767);
    int dst = row + drow;
    if (dst < 0 || dst >= height) {
        return;
    }
    int didx = dst * width + col;
    next_color[didx] = PROJECTILE;
    next_momentum[didx] = (short2)((short)drow, m.y);
}`

// NewOpenCLStepper compiles the step kernels for a width x height grid on the
// first GPU found, falling back to a CPU device.
func NewOpenCLStepper(width, height int, gravity int16) (*OpenCLStepper, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &OpenCLStepper{width: width, height: height, deviceName: device.Name()}
	if err := s.init(device, gravity); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (s *OpenCLStepper) init(device *cl.Device, gravity int16) error {
	var err error
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{projectileKernelSource}); err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.stepKernel, err = s.program.CreateKernel("projectile_step"); err != nil {
		return fmt.Errorf("creating step kernel: %w", err)
	}
	if s.clearKernel, err = s.program.CreateKernel("clear_cells"); err != nil {
		return fmt.Errorf("creating clear kernel: %w", err)
	}

	size := s.width * s.height
	colorBytes := size * int(unsafe.Sizeof(Color(0)))
	momBytes := size * int(unsafe.Sizeof(Momentum{}))
	if s.currColor, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, colorBytes); err != nil {
		return fmt.Errorf("allocating current color buffer: %w", err)
	}
	if s.currMom, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, momBytes); err != nil {
		return fmt.Errorf("allocating current momentum buffer: %w", err)
	}
	if s.nextColor, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, colorBytes); err != nil {
		return fmt.Errorf("allocating next color buffer: %w", err)
	}
	if s.nextMom, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, momBytes); err != nil {
		return fmt.Errorf("allocating next momentum buffer: %w", err)
	}

	if err := s.stepKernel.SetArgs(
		int32(s.width),
		int32(s.height),
		int32(gravity),
		s.currColor,
		s.currMom,
		s.nextColor,
		s.nextMom,
	); err != nil {
		return fmt.Errorf("setting step kernel arguments: %w", err)
	}
	if err := s.clearKernel.SetArgs(int32(size), s.nextColor, s.nextMom); err != nil {
		return fmt.Errorf("setting clear kernel arguments: %w", err)
	}
	return nil
}

// Step implements Stepper.
func (s *OpenCLStepper) Step(st *Store) error {
	assert(st.nextClean, "step without ClearNext")
	size := s.width * s.height
	if st.width != s.width || st.height != s.height {
		return fmt.Errorf("store is %dx%d, stepper compiled for %dx%d", st.width, st.height, s.width, s.height)
	}
	colorBytes := size * int(unsafe.Sizeof(Color(0)))
	momBytes := size * int(unsafe.Sizeof(Momentum{}))

	if _, err := s.queue.EnqueueWriteBuffer(s.currColor, false, 0, colorBytes, unsafe.Pointer(&st.currColor[0]), nil); err != nil {
		return fmt.Errorf("writing current colors: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBuffer(s.currMom, false, 0, momBytes, unsafe.Pointer(&st.currMom[0]), nil); err != nil {
		return fmt.Errorf("writing current momentum: %w", err)
	}
	global := []int{size}
	if _, err := s.queue.EnqueueNDRangeKernel(s.clearKernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing clear kernel: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.stepKernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing step kernel: %w", err)
	}
	st.nextClean = false
	if _, err := s.queue.EnqueueReadBuffer(s.nextColor, true, 0, colorBytes, unsafe.Pointer(&st.nextColor[0]), nil); err != nil {
		return fmt.Errorf("reading next colors: %w", err)
	}
	if _, err := s.queue.EnqueueReadBuffer(s.nextMom, true, 0, momBytes, unsafe.Pointer(&st.nextMom[0]), nil); err != nil {
		return fmt.Errorf("reading next momentum: %w", err)
	}
	return nil
}

// Name implements Stepper.
func (s *OpenCLStepper) Name() string { return "opencl" }

// DeviceName returns the OpenCL device the kernels run on.
func (s *OpenCLStepper) DeviceName() string { return s.deviceName }

// Close releases all OpenCL resources. It is safe to call on a partially
// initialised stepper.
func (s *OpenCLStepper) Close() {
	for _, buf := range []**cl.MemObject{&s.nextMom, &s.nextColor, &s.currMom, &s.currColor} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if s.stepKernel != nil {
		s.stepKernel.Release()
		s.stepKernel = nil
	}
	if s.clearKernel != nil {
		s.clearKernel.Release()
		s.clearKernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
