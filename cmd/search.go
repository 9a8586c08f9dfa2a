package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixolin/wpplugin/entity"
	"github.com/pixolin/wpplugin/errors"
	"github.com/pixolin/wpplugin/ui"
)

func (h *Handler) Search(ctx context.Context, req *entity.CommandRequest) error {
	term := strings.ToLower(strings.TrimSpace(req.Args[0]))
	if term == "" {
		return errors.SearchTermNotSpecified
	}

	plugin, err := h.selectPlugin(ctx, term)
	if err != nil {
		return err
	}
	if plugin == nil {
		// quit, or nothing found
		return nil
	}

	base := h.ctrl.PluginBaseURL()
	link := plugin.Link(base)
	if useHTML, _ := req.Cmd.Flags().GetBool("html"); useHTML {
		link = plugin.HTMLLink(base)
	}

	if err := h.ctrl.CopyLink(ctx, link); err != nil {
		return err
	}

	if openPage, _ := req.Cmd.Flags().GetBool("open"); openPage {
		return h.ctrl.OpenPluginPage(ctx, plugin.Link(base))
	}
	return nil
}

// selectPlugin runs the page/select loop until the user picks a plugin
// or quits. A nil plugin with nil error means no selection was made.
func (h *Handler) selectPlugin(ctx context.Context, term string) (*entity.Plugin, error) {
	page, err := h.fetchPage(ctx, term, 1)
	if err != nil {
		return nil, err
	}
	if len(page.Plugins) == 0 {
		fmt.Printf("No plugins found for %s.\n", ui.Bold(term))
		return nil, nil
	}

	for {
		fmt.Print(ui.RenderPage(page))

		input, err := h.prompt(page.HasMore())
		if err != nil {
			return nil, err
		}

		action, index := ui.ParseSelection(input, len(page.Plugins))
		switch action {
		case ui.ActionSelect:
			return page.Plugins[index], nil
		case ui.ActionNext:
			if !page.HasMore() {
				fmt.Println("No more results.")
				continue
			}
			next, err := h.fetchPage(ctx, term, page.Info.Page+1)
			if err != nil {
				return nil, err
			}
			if len(next.Plugins) == 0 {
				// directory promised more pages but came back empty
				fmt.Println("No more results.")
				continue
			}
			page = next
		case ui.ActionQuit:
			fmt.Println("Aborted.")
			return nil, nil
		default:
			fmt.Println("Invalid input, please try again.")
		}
	}
}

func (h *Handler) fetchPage(ctx context.Context, term string, number int) (*entity.ResultPage, error) {
	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Searching plugins...",
	})
	page, err := h.ctrl.SearchPlugins(ctx, term, number)
	ui.StopSpinner("")
	return page, err
}
