package main

import (
	"github.com/jsphweid/voicings/cmd"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func main() {
	cmd.Execute()
}
