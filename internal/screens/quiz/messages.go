package quiz

// feedbackDoneMsg is sent when the feedback display period for a question
// ends. number ties it to the question so a late tick is ignored.
type feedbackDoneMsg struct {
	number int
}
