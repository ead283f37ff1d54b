package router

import (
	"context"
	"strings"
)

// Classify returns the first route whose trigger appears in command.
// Commands without a trigger are conversation.
func (r *KeywordRouter) Classify(ctx context.Context, command string) Output {
	command = strings.TrimSpace(command)
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(command); m != nil {
			r.l.Debugf(ctx, "%s: %s (trigger %q)", logPrefixClassify, rule.route, m[1])
			return Output{Route: rule.route, Keyword: strings.ToLower(m[1])}
		}
	}

	r.l.Debugf(ctx, "%s: %s", logPrefixClassify, RouteConversation)
	return Output{Route: RouteConversation}
}
