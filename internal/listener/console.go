package listener

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pixil98/go-haunt/internal/session"
)

// console implements the admin command loop over one connection.
type console struct {
	handle *session.SimHandle
}

func (c *console) Serve(ctx context.Context, conn io.ReadWriter) {
	fmt.Fprintf(conn, "haunt admin console. Commands: status, players, start, quit\n")

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "":
		case "status":
			c.printStatus(conn)
		case "players":
			c.printPlayers(conn)
		case "start":
			if err := c.handle.Start(ctx); err != nil {
				fmt.Fprintf(conn, "starting session: %s\n", err)
				continue
			}
			fmt.Fprintf(conn, "session started\n")
		case "quit":
			return
		default:
			fmt.Fprintf(conn, "unknown command. Commands: status, players, start, quit\n")
		}
	}
}

func (c *console) printStatus(conn io.Writer) {
	update := c.handle.Snapshot()
	if update.Lobby != nil {
		fmt.Fprintf(conn, "in lobby, %d player(s) joined\n", len(update.Lobby.Players))
		return
	}

	sim := update.Sim
	fmt.Fprintf(conn, "running: ghost in room %d (favorite %d)\n", sim.GhostRoom, sim.FavoriteRoom)
	fmt.Fprintf(conn, "  orb=%t writing=%t emf=%d hunting=%t room_temp=%.1f\n",
		sim.OrbVisible, sim.WritingVisible, sim.EMFLevel, sim.Hunting, sim.RoomTemp)
}

func (c *console) printPlayers(conn io.Writer) {
	update := c.handle.Snapshot()
	if update.Lobby != nil {
		for _, name := range update.Lobby.Players {
			fmt.Fprintf(conn, "%s (in lobby)\n", name)
		}
		return
	}

	for _, p := range update.Sim.Players {
		room := "unknown"
		if p.Room != nil {
			room = fmt.Sprintf("room %d", *p.Room)
		}
		fmt.Fprintf(conn, "%s: %s, sanity %.0f\n", p.Name, room, p.Sanity)
	}
}
