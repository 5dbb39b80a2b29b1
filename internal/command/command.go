package command

import "context"

// Client consumes chat updates until ctx is done or the update stream ends.
type Client interface {
	HandleCommand(ctx context.Context) error
}
