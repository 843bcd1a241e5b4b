package pagescmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const registerPageMessageType = "sitekit.pages.register_page"

// RegisterPageCommand validates a raw page payload and, when it passes all
// three validation steps, registers the assembled page under its slug.
type RegisterPageCommand struct {
	// Payload carries the raw page document, typically decoded from JSON.
	Payload map[string]any `json:"payload"`
	// ResolveShared controls whether shared-section references are resolved
	// into the page body before registration.
	ResolveShared bool `json:"resolve_shared,omitempty"`
}

// Type implements command.Message.
func (RegisterPageCommand) Type() string { return registerPageMessageType }

// Validate ensures a payload is present before handlers execute.
func (cmd RegisterPageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Payload, validation.By(func(any) error {
			if len(cmd.Payload) == 0 {
				return validation.NewError("sitekit.pages.register_page.payload_required", "payload is required")
			}
			return nil
		})),
	)
}
