package cmd

import (
	"context"

	"github.com/pixolin/wpplugin/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.OpenDocs(ctx, req.Args)
}
