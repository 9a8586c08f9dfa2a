package cmd

import (
	"context"
	"fmt"

	"github.com/google/go-github/github"
	"github.com/pixolin/wpplugin/constants"
	"github.com/pixolin/wpplugin/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("wpplugin version %s", constants.Version))
	if constants.Version != "source" {
		latest, err := getLatestVersion(ctx)
		if err != nil {
			return err
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of the wpplugin CLI is available, please update to:", latest)
		}
	}
	return nil
}

func getLatestVersion(ctx context.Context) (string, error) {
	client := github.NewClient(nil)
	rep, _, err := client.Repositories.GetLatestRelease(ctx, "pixolin", "wpplugin")
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
