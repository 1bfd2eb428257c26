package main

import (
	"fmt"

	"github.com/trezcool/gradebook/core/message"
)

func (cli *commandLine) message(args []string) error {
	fs := cli.newFlagSet("message")
	class := fs.String("class", "", "Class code, e.g. 10A.")
	subject := fs.String("subject", "", "Message subject.")
	body := fs.String("body", "", "Message body.")
	if err := cli.parse(fs, args); err != nil {
		return err
	}

	sent, err := cli.msgSvc.SendToClass(message.Compose{Class: *class, Subject: *subject, Body: *body})
	if err != nil {
		cli.report(err)
		return err
	}
	fmt.Fprintf(cli.out, "message sent to %d students\n", sent)
	return nil
}
