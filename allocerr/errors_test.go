package allocerr

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func TestFromResult(t *testing.T) {
	testCases := map[string]struct {
		Result common.VkResult
		Class  error
	}{
		"OutOfHostMemory":    {Result: core1_0.VKErrorOutOfHostMemory, Class: ErrAllocationFailed},
		"OutOfDeviceMemory":  {Result: core1_0.VKErrorOutOfDeviceMemory, Class: ErrAllocationFailed},
		"TooManyObjects":     {Result: core1_0.VKErrorTooManyObjects, Class: ErrAllocationFailed},
		"FormatNotSupported": {Result: core1_0.VKErrorFormatNotSupported, Class: ErrFeatureNotSupported},
		"FeatureNotPresent":  {Result: core1_0.VKErrorFeatureNotPresent, Class: ErrFeatureNotSupported},
		"DeviceLost":         {Result: core1_0.VKErrorDeviceLost},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			err := FromResult("vkTest", testCase.Result)
			require.Error(t, err)

			var driverErr *DriverError
			require.True(t, errors.As(err, &driverErr))
			require.Equal(t, testCase.Result, driverErr.Result)
			require.Equal(t, "vkTest", driverErr.Op)

			if testCase.Class != nil {
				require.True(t, errors.Is(err, testCase.Class))
			} else {
				require.False(t, errors.Is(err, ErrAllocationFailed))
				require.False(t, errors.Is(err, ErrFeatureNotSupported))
			}

			require.Equal(t, testCase.Result, Result(err))
		})
	}
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(nil, "vkTest", core1_0.VKSuccess))

	err := Wrap(errors.New("boom"), "vkCreateImage", core1_0.VKErrorOutOfDeviceMemory)
	require.True(t, errors.Is(err, ErrAllocationFailed))
	require.Equal(t, core1_0.VKErrorOutOfDeviceMemory, Result(err))

	err = Wrap(errors.New("boom"), "vkCreateImage", core1_0.VKSuccess)
	require.Error(t, err)
	require.Equal(t, core1_0.VKErrorUnknown, Result(err))
}

func TestResultFromSentinels(t *testing.T) {
	require.Equal(t, core1_0.VKSuccess, Result(nil))
	require.Equal(t, core1_0.VKErrorTooManyObjects, Result(errors.Wrap(ErrCapacityExceeded, "allocate")))
	require.Equal(t, core1_0.VKErrorInitializationFailed, Result(ErrNotImportable))
	require.Equal(t, core1_0.VKErrorOutOfDeviceMemory, Result(ErrSizeMismatch))
	require.Equal(t, core1_0.VKErrorFeatureNotPresent, Result(ErrFeatureNotSupported))
}
