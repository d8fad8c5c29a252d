package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/engisim/core/internal/uploader"
)

// stringList is a repeatable flag value.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var screenshots stringList
	server := flag.String("server", "http://localhost:3000", "EngiSimulation server URL")
	token := flag.String("token", "", "Session token (from /auth/login)")
	email := flag.String("email", "", "Login email, used when no token is given")
	password := flag.String("password", "", "Login password, used when no token is given")
	title := flag.String("title", "", "Project title")
	description := flag.String("description", "", "Project description")
	software := flag.String("software", "", "Software the project was built with")
	tags := flag.String("tags", "", "Comma separated tags")
	youtube := flag.String("youtube", "", "Optional YouTube demo URL")
	primary := flag.String("file", "", "Path to the simulation file or archive")
	flag.Var(&screenshots, "screenshot", "Screenshot path (repeatable)")
	flag.Parse()

	if *primary == "" {
		fail("a project file is required (-file)")
	}

	ctx := context.Background()
	client := uploader.NewClient(*server, *token)
	if *token == "" {
		if *email == "" || *password == "" {
			fail("either -token or -email/-password is required")
		}
		if _, err := client.Login(ctx, *email, *password); err != nil {
			fail("login failed: %v", err)
		}
	}

	wizard := uploader.NewWizard(client, func(status string) {
		fmt.Println(status)
	})

	draft := wizard.Draft()
	draft.Title = *title
	draft.Description = *description
	draft.SoftwareType = *software
	draft.YoutubeURL = *youtube
	if *tags != "" {
		for _, t := range strings.Split(*tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				draft.Tags = append(draft.Tags, t)
			}
		}
	}

	for _, path := range screenshots {
		asset, err := readAsset(path)
		if err != nil {
			fail("screenshot %s: %v", path, err)
		}
		draft.Screenshots = append(draft.Screenshots, asset)
	}

	asset, err := readAsset(*primary)
	if err != nil {
		fail("project file %s: %v", *primary, err)
	}
	draft.Primary = asset

	if err := wizard.Next(); err != nil {
		fail("%v", err)
	}
	if err := wizard.Next(); err != nil {
		fail("%v", err)
	}

	created, err := wizard.Submit(ctx)
	if err != nil {
		fail("submission failed: %v", err)
	}
	fmt.Printf("Project %q registered with id %s\n", created.Title, created.ID)
}

func readAsset(path string) (uploader.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return uploader.Asset{}, err
	}
	return uploader.Asset{Name: filepath.Base(path), Data: data}, nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
