package controller

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pixolin/wpplugin/errors"
)

// CopyLink puts the link on the system clipboard and echoes it. When no
// clipboard is available the link is still printed, so the user always
// gets the result.
func (c *Controller) CopyLink(ctx context.Context, link string) error {
	if err := clipboard.WriteAll(link); err != nil {
		fmt.Println(errors.ClipboardNotAvailable)
		fmt.Printf("Copy:\n\n%s\n\n", link)
		return nil
	}

	fmt.Printf("Copied to your clipboard:\n%s\n", link)
	return nil
}
