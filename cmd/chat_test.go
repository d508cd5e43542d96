package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/yungbote/learnhub/internal/domain/chat"
	"github.com/yungbote/learnhub/internal/services"
)

func TestChatLoopSkipsBlankLines(t *testing.T) {
	color.NoColor = true
	var got []string
	send := func(_ context.Context, msg string) (services.SendResult, error) {
		got = append(got, msg)
		reply := chat.NewMessage(chat.RoleAssistant, "reply to "+msg)
		return services.SendResult{Sent: true, Reply: &reply}, nil
	}
	var out bytes.Buffer
	in := strings.NewReader("hello\n   \nlesson plan\n")
	if err := chatLoop(context.Background(), in, &out, send); err != nil {
		t.Fatalf("chatLoop: %v", err)
	}
	if len(got) != 2 || got[0] != "hello" || got[1] != "lesson plan" {
		t.Fatalf("sent=%q", got)
	}
	if !strings.Contains(out.String(), "reply to lesson plan") {
		t.Fatalf("output missing reply: %q", out.String())
	}
}

func TestCourseURLCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"course-url", "--path", "/course", "3. Basics of Physics"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "/course?course=3.%20Basics%20of%20Physics\n"; out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}
