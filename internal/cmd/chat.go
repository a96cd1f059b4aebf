package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/prospect"
)

var chatCmd = &cobra.Command{
	Use:   "chat <id> [message]",
	Short: "Improve a draft through chat",
	Long: `Send one chat turn asking the backend to improve the stored
email draft. When the reply includes a rewritten draft it is printed
after the assistant's message.

Examples:
  prospectctl chat 7f3a2c "make it shorter and more direct"
  prospectctl chat 7f3a2c "mention the funding round" --web-search
  prospectctl chat reset 7f3a2c`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		req := prospect.ChatRequest{UserInput: args[1]}
		if cmd.Flags().Changed("web-search") {
			webSearch, _ := cmd.Flags().GetBool("web-search")
			req.UseWebSearch = &webSearch
		}
		if cmd.Flags().Changed("temperature") {
			temp, _ := cmd.Flags().GetFloat64("temperature")
			req.Temperature = &temp
		}

		log := prospect.NewChatLog()
		log.AddUser(args[1])

		resp, err := app.prospects.Chat(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		log.AddReply(resp)

		for _, msg := range log.Messages() {
			fmt.Printf("%s: %s\n", msg.Role, msg.Content)
		}
		if draft := log.LatestDraft(); draft != nil {
			fmt.Printf("\nSubject: %s\n", draft.MailTitle)
			if draft.MailBodyPlain != "" {
				fmt.Printf("\n%s\n", draft.MailBodyPlain)
			}
		}
		return nil
	},
}

var chatResetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Clear the chat history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if err := app.prospects.ResetChat(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Chat history cleared.")
		return nil
	},
}

func init() {
	chatCmd.Flags().Bool("web-search", false, "let the assistant search the web")
	chatCmd.Flags().Float64("temperature", 0, "sampling temperature")

	chatCmd.AddCommand(chatResetCmd)
	rootCmd.AddCommand(chatCmd)
}
