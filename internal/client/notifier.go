package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/idea-brand-coach/models"
)

// printNotifier writes notifications to the command output. Title tasks may
// notify from their own goroutine.
type printNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func (n *printNotifier) Notify(notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := "!"
	if notification.Level == models.NotificationInfo {
		prefix = "i"
	}
	fmt.Fprintf(n.out, "[%s] %s: %s\n", prefix, notification.Title, notification.Description)
}
