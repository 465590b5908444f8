package catalog

import "github.com/nijaru/yt-kb/models"

// Searches lists the discovery queries run per folder, in order.
var Searches = []models.SearchPlan{
	{
		Folder: "gottman",
		Queries: []models.Query{
			{Text: "Gottman Institute relationships", Count: 20},
			{Text: "John Gottman interview marriage", Count: 15},
			{Text: "Gottman four horsemen", Count: 10},
			{Text: "Gottman bids for connection", Count: 5},
		},
	},
	{
		Folder: "sue-johnson",
		Queries: []models.Query{
			{Text: "Sue Johnson EFT couples therapy", Count: 15},
			{Text: "Sue Johnson Hold Me Tight", Count: 10},
			{Text: "Sue Johnson attachment love", Count: 10},
		},
	},
	{
		Folder: "esther-perel",
		Queries: []models.Query{
			{Text: "Esther Perel relationship advice", Count: 20},
			{Text: "Esther Perel infidelity desire", Count: 10},
			{Text: "Esther Perel TED talk", Count: 5},
		},
	},
	{
		Folder: "chris-voss",
		Queries: []models.Query{
			{Text: "Chris Voss negotiation tactics", Count: 15},
			{Text: "Chris Voss Never Split the Difference", Count: 10},
			{Text: "Chris Voss empathy listening", Count: 5},
		},
	},
	{
		Folder: "brene-brown",
		Queries: []models.Query{
			{Text: "Brene Brown vulnerability relationships", Count: 15},
			{Text: "Brene Brown shame empathy", Count: 10},
			{Text: "Brene Brown trust courage", Count: 5},
		},
	},
	{
		Folder: "tony-robbins",
		Queries: []models.Query{
			{Text: "Tony Robbins relationships marriage", Count: 10},
			{Text: "Tony Robbins communication love", Count: 8},
		},
	},
	{
		Folder: "attachment-theory",
		Queries: []models.Query{
			{Text: "attachment theory relationships explained", Count: 15},
			{Text: "anxious avoidant attachment style", Count: 10},
			{Text: "Thais Gibson attachment theory", Count: 8},
			{Text: "secure attachment how to", Count: 5},
		},
	},
	{
		Folder: "love-languages",
		Queries: []models.Query{
			{Text: "five love languages Gary Chapman", Count: 10},
			{Text: "love languages explained relationships", Count: 8},
		},
	},
}
