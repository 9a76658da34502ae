// Package tiktok discovers accounts through the Apify TikTok hashtag
// scraper. Unlike Instagram this is a one-phase provider: the scraped
// video items already embed the author's follower counts, so discovery
// yields fully canonicalized records and no enrichment phase exists.
package tiktok
