package file_test

import (
	"fmt"
	"os"
	"path/filepath"

	jsoncodec "github.com/0xalexb/hjarta-conf/codec/json"
	"github.com/0xalexb/hjarta-conf/file"
)

// Settings is the application-owned configuration structure.
type Settings struct {
	FirstRun bool   `json:"first_run"`
	Theme    string `json:"theme"`
}

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "example")
	if err != nil {
		fmt.Println(err)

		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")
	c := jsoncodec.New()

	// Persist the settings, then read them back.
	err = file.Write(path, &Settings{FirstRun: false, Theme: "dark"}, c)
	if err != nil {
		fmt.Println(err)

		return
	}

	loaded, err := file.Load[Settings](path, c)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Printf("first_run=%v theme=%s\n", loaded.FirstRun, loaded.Theme)
	// Output: first_run=false theme=dark
}
