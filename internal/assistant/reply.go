package assistant

import "fmt"

// ErrorReply renders a failure as the Markdown apology shown to users.
func ErrorReply(err error) Reply {
	return Reply{
		Type: ReplyError,
		Content: fmt.Sprintf("## Butler AI Assistant Error\n\n"+
			"I apologize, but I encountered an error processing your request:\n\n```\n%v\n```", err),
	}
}
