package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBodyEscapesOrgName(t *testing.T) {
	body := Body(Invite{
		ToEmail:          "new.hire@example.com",
		OrgName:          `<img src=x onerror=alert(1)> & "Co"`,
		RegistrationLink: "https://app.dashdocs.test/register?token=abc",
	})

	require.NotContains(t, body, "<img")
	require.Contains(t, body, "&lt;img src=x onerror=alert(1)&gt; &amp; &#34;Co&#34;")
	require.Contains(t, body, `<a href="https://app.dashdocs.test/register?token=abc"`)
}
