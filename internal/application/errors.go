package application

import "errors"

// ErrAttachmentsDisabled is returned when no object storage is configured.
var ErrAttachmentsDisabled = errors.New("attachments are not configured")
