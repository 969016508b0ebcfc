package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

// presetfetch downloads world preset directories (JSON config files for the
// worldgen command) from any go-getter source: git, http, s3, or local paths.
func main() {
	var (
		src  = flag.String("src", "", "preset source url (git::, http::, file paths...)")
		name = flag.String("name", "default", "preset name")
		out  = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	if *src == "" {
		panic("preset source url required")
	}

	if *out == "" {
		panic("output dir path required")
	}

	path := fmt.Sprintf("%s/%s", *out, *name)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading preset %s", path)

	if err := get.Get(path, *src); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading preset %s", path)
}
