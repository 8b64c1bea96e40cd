package cli

import (
	"fmt"

	"github.com/diillson/auditaxs-dashboard-go/pkg/console"
	"github.com/diillson/auditaxs-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     _             _ _ _
    / \  _   _  __| (_) |_ __ ___  _____
   / _ \| | | |/ _` + "`" + ` | | __/ _` + "`" + ` \ \/ / __|
  / ___ \ |_| | (_| | | || (_| |>  <\__ \
 /_/   \_\__,_|\__,_|_|\__\__,_/_/\_\___/
`
	fmt.Println(console.Orange(banner))
	fmt.Println(console.BrightCyan(fmt.Sprintf("Auditaxs Dashboard CLI (v%s)", version.FormatVersion())))
}
