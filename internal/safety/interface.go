package safety

// Checker enforces path and shell-command safety rules.
type Checker interface {
	// IsPathSafe rejects paths that resolve inside a forbidden folder.
	// Containment is tested on canonical paths, not substrings.
	IsPathSafe(path string) Verdict

	// CanDelete additionally requires the path to sit inside one of the
	// configured safe folders; deletion is opt-in by folder.
	CanDelete(path string) Verdict

	// CanModify is IsPathSafe under a different name: writes only exclude
	// forbidden folders.
	CanModify(path string) Verdict

	// CanExecuteCommand rejects commands carrying dangerous substrings or
	// referencing a forbidden folder. A pass still requires confirmation.
	CanExecuteCommand(commandText string) Verdict
}
