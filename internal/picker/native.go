package picker

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
)

// Native shows the platform's own open-file dialog.
type Native struct {
	Title    string
	StartDir string
}

func (n Native) Pick(ctx context.Context) (string, error) {
	title := n.Title
	if title == "" {
		title = DefaultTitle
	}
	opts := []zenity.Option{zenity.Title(title), zenity.Context(ctx)}
	if n.StartDir != "" {
		opts = append(opts, zenity.Filename(n.StartDir))
	}
	path, err := zenity.SelectFile(opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrNoSelection
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
