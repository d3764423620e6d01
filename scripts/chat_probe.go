// Smoke probe for a running chat backend. Walks the whole session lifecycle
// against a live server and prints a colored pass/fail per step.
//
// Usage: go run scripts/chat_probe.go [baseURL]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"arogya-chat-be/pkg/client"

	"github.com/fatih/color"
)

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed).SprintFunc()
	info = color.New(color.FgCyan).SprintFunc()
)

func step(name string, err error) {
	if err != nil {
		fmt.Printf("%s %s: %v\n", fail("[FAIL]"), name, err)
		os.Exit(1)
	}
	fmt.Printf("%s %s\n", pass("[ OK ]"), name)
}

func main() {
	baseURL := "http://localhost:3000/api"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}
	fmt.Printf("%s probing %s\n", info("[INFO]"), baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(baseURL)
	userId := fmt.Sprintf("probe-%d", time.Now().Unix())

	status, err := c.Status(ctx)
	step("status", err)
	fmt.Printf("%s api=%v database=%v redis=%v nats=%v\n",
		info("[INFO]"), status.Api, status.Database, status.Redis, status.Nats)

	sess, err := c.CreateSession(ctx, client.CreateSessionInput{
		UserId:   userId,
		Language: "en",
	})
	step("create session", err)

	result, err := c.SendMessage(ctx, client.SendMessageInput{
		SessionId: sess.Id,
		Message:   "I have a fever today",
		UserId:    userId,
	})
	step("send message", err)

	if result.SessionTitle != "Fever Query" {
		step("title derivation", fmt.Errorf("got title %q", result.SessionTitle))
	}
	step("title derivation", nil)

	fetched, err := c.GetSession(ctx, sess.Id)
	step("get session", err)
	if len(fetched.Messages) != 2 {
		step("message count", fmt.Errorf("expected 2 messages, got %d", len(fetched.Messages)))
	}
	step("message count", nil)

	sessions, err := c.ListSessions(ctx, userId)
	step("list sessions", err)
	if len(sessions) != 1 {
		step("list count", fmt.Errorf("expected 1 session, got %d", len(sessions)))
	}
	step("list count", nil)

	newTitle := "Smoke Session"
	_, err = c.UpdateSession(ctx, sess.Id, client.UpdateSessionInput{Title: &newTitle})
	step("update session", err)

	step("delete session", c.DeleteSession(ctx, sess.Id))
	step("delete session again", c.DeleteSession(ctx, sess.Id))

	sessions, err = c.ListSessions(ctx, userId)
	step("list after delete", err)
	if len(sessions) != 0 {
		step("deleted hidden from list", fmt.Errorf("expected 0 sessions, got %d", len(sessions)))
	}
	step("deleted hidden from list", nil)

	fmt.Printf("%s all probes passed\n", pass("[DONE]"))
}
