package allocerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var (
	// ErrFeatureNotSupported means the driver cannot provide the requested format and usage combination
	ErrFeatureNotSupported = errors.New("requested format or usage is not supported")
	// ErrAllocationFailed means image or memory creation ran out of resources
	ErrAllocationFailed = errors.New("image or memory allocation failed")
	// ErrNoMatchingMemoryType means no device memory type satisfies the image's requirements
	ErrNoMatchingMemoryType = errors.New("no matching memory type")
	// ErrNotImportable means the driver cannot import the platform's handle type for this image
	ErrNotImportable = errors.New("external memory handle is not importable")
	// ErrSizeMismatch means an external buffer is smaller than the image requires
	ErrSizeMismatch = errors.New("external memory size mismatch")
	// ErrCapacityExceeded means more images were requested than a swapchain can hold
	ErrCapacityExceeded = errors.New("swapchain image capacity exceeded")
	// ErrImportFailed means an external handle could not be referenced for import
	ErrImportFailed = errors.New("external memory import failed")
)

// DriverError reports a non-success result from a driver primitive
type DriverError struct {
	Op     string
	Result common.VkResult
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Result.String())
}

// FromResult builds the error for a driver primitive that returned res. Results that belong to a
// known class are marked with that class's sentinel, so errors.Is matches both the class and,
// through errors.As, the DriverError carrying the code.
func FromResult(op string, res common.VkResult) error {
	var err error = &DriverError{Op: op, Result: res}

	switch res {
	case core1_0.VKErrorOutOfHostMemory, core1_0.VKErrorOutOfDeviceMemory, core1_0.VKErrorTooManyObjects:
		return errors.Mark(err, ErrAllocationFailed)
	case core1_0.VKErrorFormatNotSupported, core1_0.VKErrorFeatureNotPresent:
		return errors.Mark(err, ErrFeatureNotSupported)
	}

	return err
}

// Wrap converts an error returned alongside res by a driver primitive. The driver's own error
// text is kept as detail.
func Wrap(err error, op string, res common.VkResult) error {
	if err == nil {
		return nil
	}

	if res == core1_0.VKSuccess {
		return errors.Wrap(err, op)
	}

	return errors.WithDetail(FromResult(op, res), err.Error())
}

// Result maps err back onto a driver result code for callers that speak in result codes
func Result(err error) common.VkResult {
	if err == nil {
		return core1_0.VKSuccess
	}

	var driverErr *DriverError
	if errors.As(err, &driverErr) {
		return driverErr.Result
	}

	switch {
	case errors.Is(err, ErrFeatureNotSupported):
		return core1_0.VKErrorFeatureNotPresent
	case errors.Is(err, ErrAllocationFailed), errors.Is(err, ErrSizeMismatch):
		return core1_0.VKErrorOutOfDeviceMemory
	case errors.Is(err, ErrNoMatchingMemoryType):
		return core1_0.VKErrorOutOfDeviceMemory
	case errors.Is(err, ErrNotImportable), errors.Is(err, ErrImportFailed):
		return core1_0.VKErrorInitializationFailed
	case errors.Is(err, ErrCapacityExceeded):
		return core1_0.VKErrorTooManyObjects
	}

	return core1_0.VKErrorUnknown
}
