package types

// SpecialCircumstance is a condition that overrides the app's normal flow.
// The only variant today is ShareNewSend.
type SpecialCircumstance interface {
	isSpecialCircumstance()
}

// ShareNewSend means the app was launched to create a Send from shared data.
type ShareNewSend struct {
	Data                     ShareData
	ShouldFinishWhenComplete bool
}

func (ShareNewSend) isSpecialCircumstance() {}

// ShareData is the payload handed to the app by the OS share sheet.
type ShareData interface {
	isShareData()
}

// TextShare is shared text.
type TextShare struct {
	Subject string
	Text    string
}

// FileShare is a shared file.
type FileShare struct {
	FileName string
	URI      string
}

func (TextShare) isShareData() {}
func (FileShare) isShareData() {}
