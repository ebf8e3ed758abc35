package infrastructure

import "sync"

type MockMessage struct {
	Address string
	Subject string
	Body    string
}

type SMTPMock struct {
	calledSend bool
	messages   []MockMessage
	mu         sync.Mutex
	Wg         sync.WaitGroup
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.calledSend = true
	s.messages = append(s.messages, MockMessage{Address: address, Subject: subject, Body: body})
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) From() string {
	return ""
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SMTPMock) Messages() []MockMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MockMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
