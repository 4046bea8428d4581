package messaging

import "fmt"

// SubjectGameUpdate carries snapshots addressed to every connected peer.
const SubjectGameUpdate = "haunt.gameupdate"

// PeerSubject carries snapshots addressed to a single peer session.
func PeerSubject(sessionID string) string {
	return fmt.Sprintf("haunt.peer.%s", sessionID)
}
