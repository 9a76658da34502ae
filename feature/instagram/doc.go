// Package instagram discovers accounts through two Apify actors: the
// hashtag scraper surfaces post owners (discovery), and the profile
// scraper delivers follower counts and bios for the genuinely new handles
// (enrichment). Only new handles ever reach the profile scraper, which is
// the expensive call.
package instagram
