package core

import "log"

// Signal is an editor-to-consumer notification delivered on the update
// channel. Consumers (the terminal adapter) translate signals into their own
// message types.
type Signal any

type SaveSignal struct {
	path    string
	content string
}

func (s SaveSignal) Value() (path, content string) {
	return s.path, s.content
}

type QuitSignal struct{}

type ErrorSignal EditorError

func (e ErrorSignal) Value() (id ErrorId, err error) {
	return e.id, e.err
}

type MessageSignal struct {
	value string
}

func (m MessageSignal) Value() string {
	return m.value
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}

func (e *editor) DispatchMessage(message string) {
	select {
	case e.updateSignal <- MessageSignal{message}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
