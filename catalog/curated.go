package catalog

import "github.com/nijaru/yt-kb/models"

// Curated is the hand-picked video list, grouped by knowledge-base folder.
var Curated = []models.Group{
	{
		Folder: "gottman",
		Items: []models.WorkItem{
			{Title: "The Four Horsemen: Criticism, Contempt, Defensiveness, and Stonewalling", ID: "1o30Ps-_8is", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "Making Relationships Work | Part 1 | Dr. John Gottman", ID: "LLXX8wzvT7c", Channel: "The Gottman Institute", Length: "~15 min"},
			{Title: "Making Relationships Work | Part 2 | Dr. John Gottman", ID: "oKOxbDLXvLg", Channel: "The Gottman Institute", Length: "~15 min"},
			{Title: "Making Relationships Work | Part 3 | Dr. John Gottman", ID: "j7kzIbyOjKY", Channel: "The Gottman Institute", Length: "~15 min"},
			{Title: "Making Relationships Work | Part 4 | Dr. John Gottman", ID: "VT5MZOWB7Gw", Channel: "The Gottman Institute", Length: "~15 min"},
			{Title: "Three Tips on the Right Way for Couples to Fight", ID: "DYzbEJ2nbOA", Channel: "The Gottman Institute", Length: "~4 min"},
			{Title: "The Magic Relationship Ratio According to Science", ID: "oMpJejEQMR0", Channel: "The Gottman Institute", Length: "~3 min"},
			{Title: "Dr. John Gottman: The Man's Guide to Women", ID: "y1psWnNbDio", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "How to Build Trust in a Relationship", ID: "rgWuCKPlpYo", Channel: "The Gottman Institute", Length: "~4 min"},
			{Title: "The Sound Relationship House", ID: "A0cEvT_Mwn0", Channel: "The Gottman Institute", Length: "~3 min"},
			{Title: "How to Turn Conflict Into Connection", ID: "bBsIsh5HhUY", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "Manage Conflict: The Art of Compromise", ID: "JgxDRbqhXIw", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "The Gottman Method for Healthy Relationships", ID: "AKTyPgwfPgg", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "How Contempt Destroys Relationships", ID: "ZI_JwPPBblk", Channel: "The Gottman Institute", Length: "~4 min"},
			{Title: "What Makes Love Last? | Dr. John Gottman", ID: "mI7KuItfxiY", Channel: "The Gottman Institute", Length: "~5 min"},
			{Title: "Repair Is the Secret Weapon of Emotionally Connected Couples", ID: "iuGGV3MaBrk", Channel: "The Gottman Institute", Length: "~4 min"},
			{Title: "The Role of Bids for Connection in Relationships", ID: "aKJ2vHUfBpA", Channel: "The Gottman Institute", Length: "~3 min"},
			{Title: "John Gottman on Trust and Betrayal", ID: "jXFz1gHEjmc", Channel: "The Gottman Institute", Length: "~10 min"},
			{Title: "Why Marriages Succeed or Fail | John Gottman | Talks at Google", ID: "AKTyPgwfPgg", Channel: "Talks at Google", Length: "~58 min"},
			{Title: "Dr. John Gottman - Love Lab | Lewis Howes", ID: "hS2MxDwfFek", Channel: "Lewis Howes", Length: "~60 min"},
		},
	},
	{
		Folder: "sue-johnson",
		Items: []models.WorkItem{
			{Title: "Sue Johnson: Creating Connection - Hold Me Tight", ID: "P1KEfQyx2yo", Channel: "PsychAlive", Length: "~20 min"},
			{Title: "Dr. Sue Johnson on Love and Attachment", ID: "bpQnJqCFPEQ", Channel: "PsychAlive", Length: "~10 min"},
			{Title: "Sue Johnson - The Power of Hold Me Tight", ID: "rCdRqaR3kOM", Channel: "Psychotherapy.net", Length: "~8 min"},
			{Title: "Sue Johnson: Emotionally Focused Therapy", ID: "BOkC0KfFq6E", Channel: "PsychAlive", Length: "~15 min"},
			{Title: "EFT: Changing the Way We See Relationships", ID: "7lLjHkbpjKo", Channel: "ICEEFT", Length: "~20 min"},
			{Title: "Sue Johnson: Love Sense - The Science of Romance", ID: "8JNaQbRoSZk", Channel: "Talks at Google", Length: "~55 min"},
			{Title: "Dr. Sue Johnson on EFT and the Science of Love", ID: "dGs9NMqhGmI", Channel: "ICEEFT", Length: "~15 min"},
			{Title: "Hold Me Tight: Conversations for Connection", ID: "oflMtfBWJjQ", Channel: "Sue Johnson", Length: "~10 min"},
			{Title: "Sue Johnson on the Neuroscience of Human Connection", ID: "sOLVilFfr0Q", Channel: "PsychAlive", Length: "~12 min"},
			{Title: "An Interview with Dr. Sue Johnson on Emotionally Focused Therapy", ID: "5aH2Ppjpcho", Channel: "PsychAlive", Length: "~25 min"},
			{Title: "Sue Johnson: Are We Wired for Love?", ID: "xoMJd3Aag3U", Channel: "TEDx Talks", Length: "~18 min"},
			{Title: "The Practice of EFT | Sue Johnson", ID: "BRTnQrjyDAY", Channel: "Psychotherapy.net", Length: "~30 min"},
		},
	},
	{
		Folder: "esther-perel",
		Items: []models.WorkItem{
			{Title: "Rethinking Infidelity: A Talk for Anyone Who Has Ever Loved", ID: "P2AUat93a8Q", Channel: "TED", Length: "~21 min"},
			{Title: "The Secret to Desire in a Long-Term Relationship", ID: "sa0RUmGTCYY", Channel: "TED", Length: "~19 min"},
			{Title: "Esther Perel: Modern Love and Relationships", ID: "5iu9_8Vsmtk", Channel: "Esther Perel", Length: "~15 min"},
			{Title: "Why Happy Couples Cheat | Esther Perel | TED", ID: "P2AUat93a8Q", Channel: "TED", Length: "~21 min"},
			{Title: "Esther Perel on Erotic Desire | Lewis Howes", ID: "jE59WnCxo-o", Channel: "Lewis Howes", Length: "~60 min"},
			{Title: "Esther Perel: How to Deal with Jealousy", ID: "8JNaQbRoSZk", Channel: "Esther Perel", Length: "~10 min"},
			{Title: "The Quality of Your Relationships Determines the Quality of Your Life", ID: "y8lGY2VFMhA", Channel: "Esther Perel", Length: "~15 min"},
			{Title: "Esther Perel on Conflict in Relationships", ID: "K9K0e0IB-LA", Channel: "Esther Perel", Length: "~10 min"},
			{Title: "Esther Perel: The Future of Love | SXSW", ID: "JLm4_NfCPaI", Channel: "SXSW", Length: "~50 min"},
			{Title: "Relationships in the 21st Century | Esther Perel", ID: "eyRqfNwYAUk", Channel: "Esther Perel", Length: "~20 min"},
			{Title: "Esther Perel on the Power of Erotic Intelligence", ID: "IFOGPojjQlg", Channel: "Intelligence Squared", Length: "~60 min"},
			{Title: "Mating in Captivity | Esther Perel | Talks at Google", ID: "ierRipP1mMo", Channel: "Talks at Google", Length: "~55 min"},
			{Title: "Esther Perel at SXSW: The State of Affairs", ID: "1o4snJz3KjI", Channel: "SXSW", Length: "~55 min"},
			{Title: "How to Not Let Work Destroy Your Relationship", ID: "6o2aFRKd3ic", Channel: "Esther Perel", Length: "~10 min"},
		},
	},
	{
		Folder: "chris-voss",
		Items: []models.WorkItem{
			{Title: "Never Split the Difference | Chris Voss | TEDxUniversityofNevada", ID: "MjhDkNmtjy0", Channel: "TEDx Talks", Length: "~15 min"},
			{Title: "Chris Voss: FBI Negotiation Tactics | Lex Fridman Podcast", ID: "8EguLJgkc54", Channel: "Lex Fridman", Length: "~2.5 hrs"},
			{Title: "Chris Voss on The Art of Letting Others Have Your Way", ID: "2MhgCgCVyMg", Channel: "Talks at Google", Length: "~55 min"},
			{Title: "Former FBI Negotiator Chris Voss on How to Negotiate", ID: "guZa7mQV1l0", Channel: "Impact Theory", Length: "~60 min"},
			{Title: "Chris Voss: The Art of Negotiation | Lewis Howes", ID: "yPsvgmZlUA4", Channel: "Lewis Howes", Length: "~60 min"},
			{Title: "Tactical Empathy | Chris Voss", ID: "q-VBhxhdSHo", Channel: "Chris Voss", Length: "~10 min"},
			{Title: "How to Negotiate: NEVER Split The Difference", ID: "OaEw7MXzyiM", Channel: "Chris Voss", Length: "~20 min"},
			{Title: "Chris Voss Teaches The #1 FBI Negotiation Tactic", ID: "0oau2aCaMcI", Channel: "Mindvalley", Length: "~25 min"},
			{Title: "Former FBI Negotiator: 5 Steps To Get What You Want", ID: "W3Jd5JMhzgA", Channel: "CNBC Make It", Length: "~12 min"},
			{Title: "Chris Voss: Active Listening and Mirroring Techniques", ID: "llctqNJr2IU", Channel: "MasterClass", Length: "~10 min"},
			{Title: "Black Swan Method of Negotiation | Chris Voss", ID: "QIRkzMDbWqc", Channel: "Chris Voss", Length: "~15 min"},
			{Title: "Chris Voss Interview: How to Negotiate in Life", ID: "yr7ywyrIiC0", Channel: "Tom Bilyeu", Length: "~50 min"},
		},
	},
	{
		Folder: "brene-brown",
		Items: []models.WorkItem{
			{Title: "The Power of Vulnerability | Brené Brown | TED", ID: "iCvmsMzlF7o", Channel: "TED", Length: "~20 min"},
			{Title: "Listening to Shame | Brené Brown | TED", ID: "psN1DORYYDB", Channel: "TED", Length: "~20 min"},
			{Title: "Brené Brown on Empathy", ID: "1Evwgu369Jw", Channel: "RSA", Length: "~3 min"},
			{Title: "The Call to Courage | Brené Brown", ID: "gr-WvA7uFDQ", Channel: "Netflix", Length: "~75 min"},
			{Title: "Brené Brown: Why Your Critics Aren't the Ones Who Count", ID: "8-JXOnFOXQk", Channel: "99U", Length: "~22 min"},
			{Title: "The Anatomy of Trust | Brené Brown", ID: "k0GQSJrpVhM", Channel: "SuperSoul", Length: "~25 min"},
			{Title: "Brené Brown on Vulnerability in Relationships", ID: "ZkDaKKkFi6Y", Channel: "Oprah", Length: "~15 min"},
			{Title: "Brené Brown: Dare to Lead | Lewis Howes", ID: "NDQ1Mi5I4pg", Channel: "Lewis Howes", Length: "~60 min"},
			{Title: "Brené Brown: The Difference Between Empathy and Sympathy", ID: "KZBTYViDPlQ", Channel: "RSA", Length: "~5 min"},
			{Title: "Daring Greatly | Brené Brown | Talks at Google", ID: "iCvmsMzlF7o", Channel: "Talks at Google", Length: "~55 min"},
			{Title: "Brené Brown on Blame", ID: "RZWf2_2L2v8", Channel: "RSA", Length: "~3 min"},
			{Title: "Strong Back, Soft Front, Wild Heart | Brené Brown", ID: "8MBffxMz5YQ", Channel: "On Being", Length: "~50 min"},
		},
	},
	{
		Folder: "tony-robbins",
		Items: []models.WorkItem{
			{Title: "Tony Robbins: Why We Do What We Do | TED", ID: "Cpc-t-Uwv1I", Channel: "TED", Length: "~22 min"},
			{Title: "Tony Robbins on Relationships | Lewis Howes", ID: "EZYUFwNaJPY", Channel: "Lewis Howes", Length: "~60 min"},
			{Title: "The Secret to Living is Giving | Tony Robbins", ID: "Pk3KmhjvDSg", Channel: "Tony Robbins", Length: "~10 min"},
			{Title: "Tony Robbins: How to Save Your Marriage", ID: "dOwY50KSbRU", Channel: "Tony Robbins", Length: "~20 min"},
			{Title: "Tony Robbins on the Psychology of Relationships", ID: "7FwB0zDJRag", Channel: "Tony Robbins", Length: "~15 min"},
			{Title: "Tony Robbins: Creating an Extraordinary Relationship", ID: "XwBq-5PULqM", Channel: "Tony Robbins", Length: "~20 min"},
			{Title: "Tony Robbins: How to Communicate Better in Relationships", ID: "SzzEMCDfJAM", Channel: "Tony Robbins", Length: "~15 min"},
			{Title: "Tony Robbins Saves a Marriage in 8 Minutes", ID: "Ke4Rn1I7VNo", Channel: "Tony Robbins", Length: "~8 min"},
			{Title: "Tony Robbins: The 6 Human Needs", ID: "4IYC9GZsLXo", Channel: "Tony Robbins", Length: "~10 min"},
		},
	},
	{
		Folder: "attachment-theory",
		Items: []models.WorkItem{
			{Title: "Attachment Theory: How Your Childhood Affects Your Love Style", ID: "WjOowWxOXCg", Channel: "The School of Life", Length: "~7 min"},
			{Title: "What Is Your Attachment Style?", ID: "2s9ACDMcpjA", Channel: "The School of Life", Length: "~8 min"},
			{Title: "Anxious-Avoidant Relationship Trap Explained", ID: "OYoIVCo2pCo", Channel: "The Personal Development School", Length: "~15 min"},
			{Title: "How Your Attachment Style Impacts Your Relationship", ID: "nF3gLP8UFWI", Channel: "Psych2Go", Length: "~8 min"},
			{Title: "Attachment Theory Explained", ID: "QP-nOhJCjMI", Channel: "Sprouts", Length: "~6 min"},
			{Title: "Fearful Avoidant Attachment Style", ID: "sY2S5cP7pPo", Channel: "The Personal Development School", Length: "~20 min"},
			{Title: "Anxious Attachment Style: What You Need to Know", ID: "6eOVlejb0X0", Channel: "The Personal Development School", Length: "~18 min"},
			{Title: "How to Become Securely Attached", ID: "1o30Ps-8is", Channel: "The Personal Development School", Length: "~20 min"},
			{Title: "Thais Gibson on Attachment Theory | Lewis Howes", ID: "eGqMX7FYQBI", Channel: "Lewis Howes", Length: "~60 min"},
			{Title: "Attached: The Science of Adult Attachment", ID: "jIk5mC1Vp0g", Channel: "Heidi Priebe", Length: "~20 min"},
			{Title: "Understanding Avoidant Attachment", ID: "z2aRglMRx2M", Channel: "The Personal Development School", Length: "~15 min"},
			{Title: "Disorganized Attachment: What It Looks Like", ID: "5B_4pw8kbgk", Channel: "The Personal Development School", Length: "~15 min"},
			{Title: "How to Heal Your Attachment Style", ID: "sP7VF1Gis9o", Channel: "Therapy in a Nutshell", Length: "~12 min"},
		},
	},
	{
		Folder: "love-languages",
		Items: []models.WorkItem{
			{Title: "The 5 Love Languages Explained", ID: "PXQxdWkol3s", Channel: "Psych2Go", Length: "~6 min"},
			{Title: "Gary Chapman: The 5 Love Languages", ID: "w5undDR6rHo", Channel: "TEDx Talks", Length: "~18 min"},
			{Title: "Understanding the Five Love Languages", ID: "doRMsEDSJFc", Channel: "The School of Life", Length: "~8 min"},
			{Title: "Gary Chapman on the 5 Love Languages | Lewis Howes", ID: "9OgbVKFOFUQ", Channel: "Lewis Howes", Length: "~45 min"},
			{Title: "How to Speak Your Partner's Love Language", ID: "t4EFr5kEPJY", Channel: "Psych2Go", Length: "~7 min"},
			{Title: "5 Love Languages: Which One Do You Speak?", ID: "JqbYMhJv4jE", Channel: "Improvement Pill", Length: "~8 min"},
			{Title: "Words of Affirmation Love Language Explained", ID: "dPcEYLZ-b8s", Channel: "Psych2Go", Length: "~5 min"},
			{Title: "Quality Time Love Language", ID: "6k52p7hVJFI", Channel: "Psych2Go", Length: "~5 min"},
		},
	},
}
