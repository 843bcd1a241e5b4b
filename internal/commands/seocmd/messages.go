package seocmd

const generatePagesMessageType = "sitekit.seo.generate_pages"

// GeneratePagesCommand triggers one programmatic-SEO generation pass. The run
// is parameterized entirely by the frozen application config, so the message
// carries no payload.
type GeneratePagesCommand struct{}

// Type implements command.Message.
func (GeneratePagesCommand) Type() string { return generatePagesMessageType }
