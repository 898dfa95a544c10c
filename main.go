package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/grps/internal/grps/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := grps(); err != nil {
		logrus.Fatal(err)
	}
}

func grps() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
