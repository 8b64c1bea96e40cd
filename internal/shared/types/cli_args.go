package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	APIURL     string
	APIToken   string
	Verbose    bool

	AuditID    string
	Brands     []string
	Products   []string
	ReportName string
	ReportType []string
	Dir        string
	Publish    bool
	Locale     string
	Page       int
	PageSize   int
	Yes        bool
}
