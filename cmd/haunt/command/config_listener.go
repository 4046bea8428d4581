package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-haunt/internal/listener"
	"github.com/pixil98/go-haunt/internal/session"
	"github.com/pixil98/go-service"
)

type ListenerType int

const (
	ListenerTypeWebsocket ListenerType = iota
	ListenerTypeAdmin
)

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "websocket":
		*lt = ListenerTypeWebsocket
	case "admin":
		*lt = ListenerTypeAdmin
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

type ListenerConfig struct {
	Protocol ListenerType `json:"protocol"`
	Port     uint16       `json:"port"`
	CertPath string       `json:"cert_path,omitempty"`
	KeyPath  string       `json:"key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	if (cl.CertPath == "") != (cl.KeyPath == "") {
		el.Add(fmt.Errorf("cert_path and key_path must be set together"))
	}
	for _, path := range []string{cl.CertPath, cl.KeyPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			el.Add(fmt.Errorf("invalid path %q: %w", path, err))
		}
	}

	if cl.Protocol == ListenerTypeAdmin && cl.CertPath != "" {
		el.Add(fmt.Errorf("admin listener does not support tls"))
	}

	return el.Err()
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager, handle *session.SimHandle) (service.Worker, error) {
	switch cl.Protocol {
	case ListenerTypeWebsocket:
		return listener.NewWebsocketListener(cl.Port, cm, cl.CertPath, cl.KeyPath), nil
	case ListenerTypeAdmin:
		return listener.NewAdminListener(cl.Port, handle), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", cl.Protocol)
	}
}
