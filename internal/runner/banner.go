package runner

import (
	"fmt"

	"github.com/projectdiscovery/gologger"

	"github.com/rollcalldev/rollcall/pkg/version"
)

var banner = fmt.Sprintf(`
                ____            ____
   _________  / / /________ _  / / /
  / ___/ __ \/ / / ___/ __ '/ / / /
 / /  / /_/ / / / /__/ /_/ / / / /
/_/   \____/_/_/\___/\__,_/_/_/_/  %s
`, version.GetVersion())

// showBanner displays the banner and version to the user.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
