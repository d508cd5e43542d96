package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yungbote/learnhub/internal/app"
	"github.com/yungbote/learnhub/internal/clients/assistant"
	"github.com/yungbote/learnhub/internal/platform/shutdown"
	"github.com/yungbote/learnhub/internal/services"
	"github.com/yungbote/learnhub/internal/session"
)

func init() {
	rootCmd.AddCommand(newChatCmd())
}

func newChatCmd() *cobra.Command {
	var (
		subject string
		remote  string
	)
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the subject tutor, or with a remote assistant endpoint",
		Long: `Read lines from stdin and print replies. An empty line is ignored.

Examples:
  learnhub chat --subject Mathematics
  learnhub chat --remote http://localhost:8080/api/gemini-chat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			log := quietLogger()
			ctx, stop := shutdown.NotifyContext(cmd.Context())
			defer stop()

			sessions := session.NewMemoryStore(log, cfg.Session.TTL.Duration)
			sessionID := uuid.NewString()

			var send func(context.Context, string) (services.SendResult, error)
			if strings.TrimSpace(remote) != "" {
				client, err := assistant.NewClient(log, remote, cfg.Assistant.Timeout.Duration)
				if err != nil {
					return err
				}
				svc := services.NewAssistantService(log, client, sessions, nil)
				send = func(ctx context.Context, msg string) (services.SendResult, error) {
					return svc.SendAIMessage(ctx, sessionID, msg)
				}
			} else {
				catalogSvc, closeFn, err := app.OpenCatalog(ctx, cfg, log)
				if err != nil {
					return err
				}
				defer closeFn()
				if _, err := sessions.Update(ctx, sessionID, func(st *session.State) error {
					st.Subject = subject
					return nil
				}); err != nil {
					return err
				}
				tutor := services.NewTutorService(log, catalogSvc, sessions, cfg.Tutor.TypingDelay.Duration, nil)
				send = func(ctx context.Context, msg string) (services.SendResult, error) {
					return tutor.SendMessage(ctx, sessionID, msg)
				}
			}
			return chatLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), send)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "Mathematics", "subject the tutor answers about")
	cmd.Flags().StringVar(&remote, "remote", "", "assistant endpoint URL; chats with it instead of the tutor")
	return cmd
}

func chatLoop(ctx context.Context, in io.Reader, out io.Writer, send func(context.Context, string) (services.SendResult, error)) error {
	you := color.New(color.FgGreen, color.Bold)
	bot := color.New(color.FgCyan)
	typing := color.New(color.FgHiBlack, color.Italic)

	sc := bufio.NewScanner(in)
	for {
		you.Fprint(out, "you> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		typing.Fprintln(out, "Typing...")
		res, err := send(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if res.Reply != nil {
			bot.Fprintln(out, res.Reply.Text)
		}
	}
}
