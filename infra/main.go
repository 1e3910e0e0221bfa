package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/report-cms/infra/cloudrun"
	"github.com/GregMSThompson/report-cms/infra/docker"
	"github.com/GregMSThompson/report-cms/infra/firestore"
	"github.com/GregMSThompson/report-cms/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create the database holding the report document
		db, err := firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		url, err := cloudrun.SetupCloudRun(ctx, prov, db, repo)
		if err != nil {
			return err
		}

		ctx.Export("url", url)
		return nil
	})
}
