package discord

import (
	"strconv"

	"emperror.dev/errors"
)

// ImageFormat is a CDN image format.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatJPG  ImageFormat = "jpg"
	ImageFormatWebP ImageFormat = "webp"
)

func (f ImageFormat) valid() bool {
	switch f {
	case ImageFormatPNG, ImageFormatJPEG, ImageFormatJPG, ImageFormatWebP:
		return true
	}
	return false
}

// checkImageSize validates a CDN size parameter: any power of two in
// [16, 4096].
func checkImageSize(size int) error {
	if size < 16 || size > 4096 || size&(size-1) != 0 {
		return errors.WithMessagef(ErrInvalidArgument, "image size %d must be a power of two between 16 and 4096", size)
	}
	return nil
}

// MessageApplication is the application attached to rich-presence related
// messages.
type MessageApplication struct {
	ID             Snowflake `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitzero"`
	Icon           string    `json:"icon,omitzero"`
	CoverImageHash string    `json:"cover_image,omitzero"`
	PrimarySKUID   Snowflake `json:"primary_sku_id,omitzero"`
}

// CoverImageURL returns the store cover image URL with default parameters,
// or "" if the application has no cover image.
func (a *MessageApplication) CoverImageURL() string {
	url, err := a.MakeCoverImageURL(ImageFormatPNG, 4096)
	if err != nil {
		// Defaults are always valid.
		panic(err)
	}
	return url
}

// MakeCoverImageURL builds the store cover image URL. size must be a power
// of two in [16, 4096] and format one of png, jpeg, jpg or webp, otherwise
// an ErrInvalidArgument error is returned before anything else happens.
// Returns "" with no error when the application has no cover image.
func (a *MessageApplication) MakeCoverImageURL(format ImageFormat, size int) (string, error) {
	if !format.valid() {
		return "", errors.WithMessagef(ErrInvalidArgument, "unsupported image format %q", string(format))
	}
	if err := checkImageSize(size); err != nil {
		return "", err
	}
	if a.CoverImageHash == "" {
		return "", nil
	}
	return EndpointApplicationCover(a.ID, a.CoverImageHash, string(format)) + "?size=" + strconv.Itoa(size), nil
}
