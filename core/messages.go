package core

var (
	NewFileMessage = "new file"
)
