package services

type ScanRequest struct {
	RootPath string
	Filter   string
}

type ActionType string

const (
	ActionDelete     ActionType = "delete"
	ActionOpenFolder ActionType = "open-folder"
)

type ActionRequest struct {
	Type ActionType
	Path string
}
