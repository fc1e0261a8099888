package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// chatFlags are the options accepted after any chat subcommand.
type chatFlags struct {
	knowledgeBase bool
	copy          bool
	sessionID     string
}

func parseChatFlags(args []string) (chatFlags, []string, error) {
	flagArgs, positional := splitFlags(args, "session")

	var cf chatFlags
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cf.knowledgeBase, "kb", false, "use the system knowledge base")
	fs.BoolVar(&cf.copy, "copy", false, "copy the answer to the clipboard")
	fs.StringVar(&cf.sessionID, "session", "", "session id to use instead of the most recent one")

	if err := fs.Parse(flagArgs); err != nil {
		return cf, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return cf, positional, nil
}

func (a *App) chat(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: chat needs <subcommand> <chatbot-type>", ErrUsage)
	}
	sub := args[0]

	cf, rest, err := parseChatFlags(args[1:])
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: chat %s needs <chatbot-type>", ErrUsage, sub)
	}
	chatbotType, rest := models.ChatbotType(rest[0]), rest[1:]

	userID, err := a.userID(ctx)
	if err != nil {
		return err
	}

	chat := a.services.Chat(userID, chatbotType, &printNotifier{out: a.out})
	defer chat.Wait()

	if cf.sessionID != "" {
		if err := chat.Select(ctx, cf.sessionID); err != nil {
			return err
		}
	}

	switch sub {
	case "sessions":
		return a.listSessions(ctx, chat)
	case "history":
		return a.history(ctx, chat)
	case "send":
		if len(rest) == 0 {
			return fmt.Errorf("%w: chat send needs <message>", ErrUsage)
		}
		return a.send(ctx, chat, strings.Join(rest, " "), cf)
	case "new":
		var data *models.SessionCreate
		if len(rest) > 0 {
			data = &models.SessionCreate{Title: strings.Join(rest, " ")}
		}
		session, err := chat.NewSession(ctx, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "created session %s %q\n", session.ID, session.Title)
		return nil
	case "rename":
		if len(rest) < 2 {
			return fmt.Errorf("%w: chat rename needs <session-id> <title>", ErrUsage)
		}
		session, err := chat.RenameSession(ctx, rest[0], strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "renamed session %s to %q\n", session.ID, session.Title)
		return nil
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("%w: chat delete needs <session-id>", ErrUsage)
		}
		if err := chat.DeleteSession(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted session %s\n", rest[0])
		return nil
	case "clear":
		if err := chat.ClearChat(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "chat history cleared")
		return nil
	default:
		return fmt.Errorf("%w: unknown chat subcommand %q", ErrUsage, sub)
	}
}

func (a *App) listSessions(ctx context.Context, chat *service.ChatOrchestrator) error {
	sessions, err := chat.Sessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "no sessions yet")
		return nil
	}

	current, err := chat.CurrentSession(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, s := range sessions {
		marker := " "
		if current != nil && current.ID == s.ID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, s.ID, s.Title, s.UpdatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) history(ctx context.Context, chat *service.ChatOrchestrator) error {
	messages, err := chat.Messages(ctx)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Fprintln(a.out, "no messages yet")
		return nil
	}

	for _, m := range messages {
		fmt.Fprintf(a.out, "%s> %s\n", m.Role, m.Content)
	}
	return nil
}

func (a *App) send(ctx context.Context, chat *service.ChatOrchestrator, content string, cf chatFlags) error {
	res, err := chat.SendMessage(ctx, content, models.SendOptions{UseSystemKnowledgeBase: cf.knowledgeBase})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s> %s\n", res.AssistantMessage.Role, res.AssistantMessage.Content)

	if meta := res.AssistantMessage.Metadata; meta != nil && meta.Kind == models.MetadataExtractedFields {
		for _, f := range meta.Fields {
			fmt.Fprintf(a.out, "  updated field %s\n", f.FieldIdentifier)
		}
	}

	if cf.copy {
		if err := a.copyText(res.AssistantMessage.Content); err != nil {
			a.logger.Err(err).Str("func", "App.send").Msg("copy to clipboard failed")
			fmt.Fprintf(a.out, "could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(a.out, "answer copied to clipboard")
		}
	}

	// the title is generated in the background; the process must not exit
	// before it lands
	select {
	case <-res.TitleDone:
	case <-ctx.Done():
	}
	return nil
}
