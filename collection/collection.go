package collection

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/arsenal/xrswap/vkimage"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// ImageCollection holds every image of one swapchain. Either all of the first ImageCount slots
// own an image and its memory, or the collection is zero.
type ImageCollection struct {
	Images     [swapchain.MaxImages]vkimage.SharedImage
	ImageCount int
	Info       swapchain.CreateInfo
}

// Validate checks that the collection is either fully populated or entirely empty
func (c *ImageCollection) Validate() error {
	if c.ImageCount < 0 || c.ImageCount > len(c.Images) {
		return errors.Newf("image collection holds %d images, the maximum is %d", c.ImageCount, len(c.Images))
	}

	for i := 0; i < c.ImageCount; i++ {
		img := c.Images[i]
		if img.Image == 0 || img.Memory == 0 {
			return errors.Newf("image collection slot %d of %d is only partially populated: image %d memory %d",
				i, c.ImageCount, img.Image, img.Memory)
		}
	}

	for i := c.ImageCount; i < len(c.Images); i++ {
		if !c.Images[i].IsNull() {
			return errors.Newf("image collection slot %d is populated beyond the image count %d", i, c.ImageCount)
		}
	}

	return nil
}

// WriteStats writes a JSON description of the collection and each of its images
func (c *ImageCollection) WriteStats(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("ImageCount").Int(c.ImageCount)
	obj.Name("Format").String(csci.FormatName(core1_0.Format(c.Info.Format)))
	obj.Name("Usage").String(c.Info.Usage.String())
	obj.Name("Width").Int(c.Info.Width)
	obj.Name("Height").Int(c.Info.Height)
	obj.Name("ArraySize").Int(c.Info.ArraySize)
	obj.Name("FaceCount").Int(c.Info.FaceCount)

	images := obj.Name("Images").Array()
	defer images.End()

	for i := 0; i < c.ImageCount; i++ {
		img := images.Object()

		img.Name("Image").Int(int(c.Images[i].Image))
		img.Name("Memory").Int(int(c.Images[i].Memory))
		img.Name("Size").Int(c.Images[i].Size)
		img.Name("Dedicated").Bool(c.Images[i].UseDedicatedAllocation)

		img.End()
	}
}
