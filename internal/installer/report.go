package installer

import (
	"fmt"
	"strings"

	"github.com/pybundle/pyinstall/internal/openssl"
	"github.com/pybundle/pyinstall/internal/relocate"
)

// Report is the outcome of a completed install, rendered as the final
// message in text mode or emitted directly in JSON mode.
type Report struct {
	Product    string `json:"product"`
	InstallDir string `json:"install_dir"`

	// PathGuidance is the adapter's complete PATH paragraph.
	PathGuidance  string                 `json:"path_guidance"`
	QtNote        string                 `json:"qt_note,omitempty"`
	OpenSSL       openssl.Recommendation `json:"openssl"`
	Relocation    relocate.Result        `json:"relocation"`
	Shebangs      int                    `json:"shebangs_rewritten"`
	DocPath       string                 `json:"doc_path"`
	WebDoc        string                 `json:"web_doc,omitempty"`
	FeedbackEmail string                 `json:"feedback_email,omitempty"`
	FeedbackURL   string                 `json:"feedback_url,omitempty"`
}

// Render formats the report as the user-facing install summary.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s has been successfully installed to:\n\n    %s\n", r.Product, r.InstallDir)

	if r.PathGuidance != "" {
		fmt.Fprintf(&b, "\n%s\n", r.PathGuidance)
	}

	if r.QtNote != "" {
		b.WriteString(r.QtNote)
	}

	b.WriteString("\nYou may need to set the environment variables:\nOPENSSLDIR, SSL_CERT_DIR, and SSL_CERT_FILE so that your\nsystem can locate the default OpenSSL certificate directory.\nThese are our expected values for your system:\n\n")
	for _, line := range openssl.Guidance(r.OpenSSL) {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	if len(r.OpenSSL.Ambiguous) > 1 {
		fmt.Fprintf(&b, "\nThere may be multiple working openssl implementations:\n\n    %s\n", strings.Join(r.OpenSSL.Ambiguous, "\n    "))
	}

	fmt.Fprintf(&b, "\nThe documentation is available here:\n\n    %s\n", r.DocPath)
	if r.WebDoc != "" {
		fmt.Fprintf(&b, "    web: %s\n", r.WebDoc)
	}

	if r.FeedbackEmail != "" || r.FeedbackURL != "" {
		b.WriteString("\nPlease send us any feedback you might have or log bugs here:\n\n")
		if r.FeedbackEmail != "" {
			fmt.Fprintf(&b, "    %s\n", r.FeedbackEmail)
		}
		if r.FeedbackURL != "" {
			fmt.Fprintf(&b, "    %s\n", r.FeedbackURL)
		}
	}

	fmt.Fprintf(&b, "\nThank you for using %s.\n", r.Product)
	return b.String()
}
