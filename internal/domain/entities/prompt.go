package entities

// QuickPrompt is a canned message the chat input can prefill.
type QuickPrompt struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// VoiceRecording is the attachment produced by the recording stub. No audio
// is captured.
func VoiceRecording() Attachment {
	return Attachment{Name: "voice-recording.mp3", Type: "audio/mpeg"}
}
