package quiz

// answerSavedMsg reports the result of persisting an answer record.
type answerSavedMsg struct {
	err error
}

// progressSavedMsg reports the result of persisting a progress snapshot.
type progressSavedMsg struct {
	err error
}
