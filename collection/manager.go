package collection

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/arsenal/xrswap/vkimage"
	"golang.org/x/exp/slog"
)

const imageName = "image collection image"

// Manager creates, imports and destroys whole swapchain image collections. Every operation either
// completes for all images or leaves nothing behind.
//
// A collection must not be used by more than one goroutine at a time.
type Manager struct {
	logger    *slog.Logger
	allocator *vkimage.Allocator
	strategy  handle.Strategy
}

func NewManager(logger *slog.Logger, allocator *vkimage.Allocator) *Manager {
	return &Manager{
		logger:    logger,
		allocator: allocator,
		strategy:  allocator.Strategy(),
	}
}

func (m *Manager) checkCount(count int, caller string) error {
	if count < 0 || count > swapchain.MaxImages {
		m.logger.Error("Manager::"+caller+" too many images for an image collection",
			slog.Int("Requested", count),
			slog.Int("Max", swapchain.MaxImages),
		)
		return errors.Wrapf(allocerr.ErrCapacityExceeded, "%d images requested, the maximum is %d", count, swapchain.MaxImages)
	}

	return nil
}

// rollback destroys images [0, count) in reverse order
func (m *Manager) rollback(c *ImageCollection, count int) {
	for count > 0 {
		count--
		m.allocator.DestroyImage(&c.Images[count])
	}
}

// Allocate creates count exportable images described by info
func (m *Manager) Allocate(info *swapchain.CreateInfo, count int) (ImageCollection, error) {
	err := m.checkCount(count, "Allocate")
	if err != nil {
		return ImageCollection{}, err
	}

	err = info.Validate()
	if err != nil {
		return ImageCollection{}, err
	}

	var c ImageCollection
	imageIndex := 0
	for ; imageIndex < count; imageIndex++ {
		c.Images[imageIndex], err = m.allocator.CreateSwapchainImage(info)
		if err != nil {
			break
		}

		m.allocator.Device().SetImageName(c.Images[imageIndex].Image, imageName)
	}

	if err != nil {
		m.logger.Debug("Manager::Allocate FAILED", slog.Int("FailedIndex", imageIndex), slog.Any("Error", err))
		// imageIndex failed, everything before it succeeded and must go
		m.rollback(&c, imageIndex)
		return ImageCollection{}, err
	}

	c.ImageCount = count
	c.Info = *info
	debugValidate(&c)

	return c, nil
}

// AllocateFromNatives imports the first count natives into images described by info. Each
// handle is referenced before it is imported. If every import succeeds the caller's references
// are released and their sizes zeroed. If any fails, natives are left exactly as they were.
func (m *Manager) AllocateFromNatives(info *swapchain.CreateInfo, natives []handle.Native, count int) (ImageCollection, error) {
	err := m.checkCount(count, "AllocateFromNatives")
	if err != nil {
		return ImageCollection{}, err
	}

	if count > len(natives) {
		return ImageCollection{}, errors.Newf("AllocateFromNatives called with %d natives for %d images", len(natives), count)
	}

	err = info.Validate()
	if err != nil {
		return ImageCollection{}, err
	}

	var c ImageCollection
	imageIndex := 0
	for ; imageIndex < count; imageIndex++ {
		var dup handle.Native
		dup, err = handle.Duplicate(m.strategy, natives[imageIndex])
		if err != nil {
			m.logger.Error("Manager::AllocateFromNatives could not reference native handle",
				slog.Int("Index", imageIndex),
				slog.Any("Error", err),
			)
			err = errors.Mark(errors.Wrapf(err, "native handle %d", imageIndex), allocerr.ErrImportFailed)
			break
		}

		c.Images[imageIndex], err = m.allocator.CreateImageFromNative(info, &dup)
		if err != nil {
			handle.Release(m.strategy, &dup)
			break
		}

		m.allocator.Device().SetImageName(c.Images[imageIndex].Image, imageName)
	}

	if err != nil {
		m.logger.Debug("Manager::AllocateFromNatives FAILED", slog.Int("FailedIndex", imageIndex), slog.Any("Error", err))
		m.rollback(&c, imageIndex)
		return ImageCollection{}, err
	}

	// The collection owns its own references now
	for i := 0; i < count; i++ {
		handle.Release(m.strategy, &natives[i])
		natives[i].Size = 0
	}

	c.ImageCount = count
	c.Info = *info
	debugValidate(&c)

	return c, nil
}

// Handles exports one transferable handle per image, for at most maxHandles images. The caller
// owns the returned handles. If any export fails, the handles already exported are released.
func (m *Manager) Handles(c *ImageCollection, maxHandles int) ([]handle.Buffer, error) {
	count := c.ImageCount
	if maxHandles < count {
		count = maxHandles
	}
	if count < 0 {
		count = 0
	}

	handles := make([]handle.Buffer, 0, count)
	for i := 0; i < count; i++ {
		buffer, err := m.allocator.NativeHandle(c.Images[i].Memory)
		if err != nil {
			m.logger.Debug("Manager::Handles FAILED", slog.Int("FailedIndex", i), slog.Any("Error", err))

			for j := len(handles); j > 0; {
				j--
				m.strategy.Unref(&handles[j])
			}
			return nil, err
		}

		handles = append(handles, buffer)
	}

	return handles, nil
}

// Destroy destroys every image in the collection and resets it to the zero value
func (m *Manager) Destroy(c *ImageCollection) {
	for i := 0; i < c.ImageCount; i++ {
		m.allocator.DestroyImage(&c.Images[i])
	}

	*c = ImageCollection{}
	debugValidate(c)
}
