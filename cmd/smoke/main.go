// Command smoke exercises the optimistic mutation loop against a
// running server: it loads the board, applies a mutation through the
// reconciliation store (so the provisional entry is visible before the
// server confirms), waits for resolution and prints the outcome.
//
// Useful as a manual end-to-end check:
//
//	go run ./cmd/smoke --add-timeline
//	go run ./cmd/smoke --line <id> --title "Note" --content "Body"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"chronoflow/internal/client"
	"chronoflow/internal/content"
	"chronoflow/internal/domain/services"
	"chronoflow/internal/reconcile"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Server base URL")
	addTimeline := flag.Bool("add-timeline", false, "Create a new timeline lane")
	lineID := flag.String("line", "", "Timeline id to attach the note to")
	title := flag.String("title", "", "Note title")
	noteContent := flag.String("content", "", "Note content")
	draft := flag.Bool("draft", false, "Save as draft instead of publishing")
	imageURL := flag.String("image", "", "Append an image embed to the content")
	videoURL := flag.String("video", "", "Append a video embed to the content")
	linkURL := flag.String("link", "", "Append a link embed to the content")
	timeout := flag.Duration("timeout", 15*time.Second, "Overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*addr)
	store := reconcile.NewStore(c, func(msg string) {
		fmt.Fprintf(os.Stderr, "rolled back: %s\n", msg)
	})

	snapshot, err := c.Board(ctx)
	if err != nil {
		log.Fatalf("Failed to load board from %s: %v", *addr, err)
	}
	store.Resync(snapshot)
	log.Printf("Board loaded: %d timelines, %d notes", len(snapshot.Timelines), len(snapshot.Notes))

	switch {
	case *addTimeline:
		pending := store.AddTimeline(ctx)
		printTimelines(store, "optimistic")
		if err := pending.Wait(); err != nil {
			log.Fatalf("Add timeline failed: %v", err)
		}
		printTimelines(store, "confirmed")

	case *lineID != "":
		body := *noteContent
		if *imageURL != "" {
			body = content.AppendEmbed(body, content.ImageEmbed(*imageURL))
		}
		if *videoURL != "" {
			body = content.AppendEmbed(body, content.VideoEmbed(*videoURL))
		}
		if *linkURL != "" {
			body = content.AppendEmbed(body, content.LinkEmbed(*linkURL, ""))
		}

		if *draft {
			pending := store.SaveDraft(ctx, &services.SaveDraftRequest{
				Title:   *title,
				Content: body,
				LineID:  *lineID,
			})
			if err := pending.Wait(); err != nil {
				log.Fatalf("Save draft failed: %v", err)
			}
			log.Printf("Draft saved: %s", pending.DraftID())
			return
		}

		pending := store.AddNote(ctx, &services.AddNoteRequest{
			Title:   *title,
			Content: body,
			LineID:  *lineID,
		})
		log.Printf("Provisional notes: %d", len(store.Notes()))
		if err := pending.Wait(); err != nil {
			log.Fatalf("Add note failed: %v", err)
		}
		notes := store.Notes()
		log.Printf("Confirmed note: %s", notes[len(notes)-1].ID)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printTimelines(store *reconcile.Store, stage string) {
	timelines := store.Timelines()
	log.Printf("%s: %d timelines", stage, len(timelines))
	for _, t := range timelines {
		marker := ""
		if reconcile.IsLocalID(t.ID) {
			marker = " (local)"
		}
		log.Printf("  #%d %s%s", t.Number, t.ID, marker)
	}
}
