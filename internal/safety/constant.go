package safety

// dangerousPatterns are substrings that make a shell command ineligible
// for execution regardless of confirmation.
var dangerousPatterns = []string{
	"del ", "rm ", "rmdir",
	"format", "diskpart",
	"reg ", "regedit",
	"netsh", "ipconfig /release",
	"shutdown", "restart",
	"taskkill /f",
	"attrib +h",
	"> null", "2>&1",
}
