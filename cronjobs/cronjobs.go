package cronjobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"go-hermes/bluesky"
	"go-hermes/feedprocessor"
	"go-hermes/nlp"
	"go-hermes/types"
)

func analyzeFeedJob(name, uri string, limit int, nlpClient nlp.LanguageClient) {
	out, err := bluesky.FetchFeed(context.Background(), bluesky.FeedParams{URI: uri, Limit: limit})
	if err != nil {
		log.Printf("CronJob %s: error fetching feed: %v", name, err)
		return
	}

	results := feedprocessor.AnalyzeFeed(context.Background(), out, nlpClient)

	docs := make([]types.Document, 0, len(results))
	errored := 0
	for _, r := range results {
		if r.ErrorAnalysing {
			errored++
			continue
		}
		docs = append(docs, r.Document)
	}

	avg := nlp.ComputeAverageSentiment(docs)
	log.Printf("CronJob %s: analysed %d posts (%d errors), average sentiment %.3f", name, len(docs), errored, avg)
}

func InitCronJobs(nlpClient nlp.LanguageClient) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Discover Feed: Run every 10 minutes at 0 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Discover Feed Running")
		discoverURI := "at://did:plc:z72i7hdynmk6r22z27h6tvur/app.bsky.feed.generator/whats-hot"
		analyzeFeedJob("Discover Feed", discoverURI, 10, nlpClient)
	})
	if err != nil {
		log.Println("Error scheduling Discover Feed", err)
	}

	// News Feed: Run every 10 minutes at 5 minute mark
	_, err = c.AddFunc("5-59/10 * * * *", func() {
		log.Println("\nCronJob: News Feed Running")
		newsURI := "at://did:plc:kkf4naxqmweop7dv4l2iqqf5/app.bsky.feed.generator/verified-news"
		analyzeFeedJob("News Feed", newsURI, 10, nlpClient)
	})
	if err != nil {
		log.Println("Error scheduling News Feed:", err)
	}

	c.Start()
}
