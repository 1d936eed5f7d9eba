package safety

// bannedTerms is scanned in order, so earlier categories win when a
// message trips several. Keeping it a slice rather than a map makes the
// reported category stable across runs.
var bannedTerms = []string{
	// Violence and harm
	"kill", "harm", "bomb", "terror", "suicide", "murder", "die", "death",
	"violence", "attack", "assault", "weapon", "gun", "knife", "fight",
	"destroy", "damage", "hurt", "injure", "wound", "bleed", "blood",

	// Profanity
	"fuck", "shit", "damn", "hell", "bitch", "asshole", "bastard", "crap",
	"piss", "dick", "cock", "pussy", "whore", "slut",

	// Cyber threats
	"hack", "ddos", "phish", "malware", "ransomware", "virus", "trojan",
	"password dump", "credit card", "steal", "fraud", "scam", "exploit",
	"bypass", "crack", "brute force", "social engineering",

	// Drugs
	"meth", "cocaine", "heroin", "marijuana", "weed", "drugs",
	"overdose", "addiction", "smuggling",

	// Technical attacks
	"rm -rf", "drop table", "union select", "exec(", "system(", "xp_cmdshell",
	"sql injection", "xss", "csrf", "buffer overflow", "privilege escalation",

	// Markup and script injection
	"<script", "</script", "javascript:", "onclick", "onload", "onerror",
	"iframe",

	// Sexual content
	"sex", "porn", "nude", "naked", "orgasm", "masturbat", "hooker",
	"prostitute", "prostitution", "escort", "brothel", "strip club",
	"adult entertainment", "sexual services", "sex worker", "massage parlor",
	"red light district",

	// Hate speech
	"racist", "sexist", "homophobic", "transphobic", "discriminat",
	"prejudice", "hate", "bigot", "supremacist", "nazi", "fascist",
	"terrorist",

	// Self-harm
	"self-harm", "poison", "depression", "trauma", "ptsd",
}

// termVariants maps a base term to obfuscated spellings users reach for
// once the plain word is blocked. A variant hit reports the base term.
type termVariants struct {
	base     string
	variants []string
}

var bannedVariants = []termVariants{
	{"fuck", []string{"f*ck", "f**k", "f***", "fuk", "fuking", "fucker"}},
	{"shit", []string{"sh*t", "sh**", "sht", "shitter"}},
	{"damn", []string{"d*mn", "d**n"}},
	{"hell", []string{"h*ll", "h**l"}},
	{"bitch", []string{"b*tch", "b**ch"}},
	{"asshole", []string{"a**hole", "assh*le"}},
	{"bastard", []string{"b*stard", "b**tard"}},
	{"crap", []string{"cr*p", "cr**"}},
	{"piss", []string{"p*ss", "p**s"}},
	{"kill", []string{"k*ll", "k**l", "killer"}},
	{"murder", []string{"m*rder", "murderer"}},
	{"suicide", []string{"s*cide", "suicidal"}},
	{"bomb", []string{"b*mb", "bomber"}},
	{"terror", []string{"t*rror", "terrorism"}},
	{"harm", []string{"h*rm"}},
	{"violence", []string{"v*olence", "violent"}},
	{"attack", []string{"att*ck", "attacker"}},
	{"hack", []string{"h*ck", "hacker"}},
	{"malware", []string{"m*lware"}},
	{"virus", []string{"v*rus"}},
	{"phish", []string{"ph*sh", "phisher"}},
	{"steal", []string{"st*al", "stolen"}},
	{"drugs", []string{"dr*gs", "druggie"}},
	{"cocaine", []string{"c*caine"}},
	{"meth", []string{"m*th"}},
	{"heroin", []string{"h*roin"}},
	{"marijuana", []string{"m*r*juana"}},
	{"weed", []string{"w*ed"}},
	{"sex", []string{"s*x"}},
	{"porn", []string{"p*rn", "pornography"}},
	{"prostitute", []string{"pr*stitute"}},
	{"escort", []string{"esc*rt"}},
	{"brothel", []string{"br*thel"}},
	{"hooker", []string{"h*oker"}},
	{"racist", []string{"r*cist", "racism"}},
	{"hate", []string{"h*te", "hateful"}},
	{"nazi", []string{"n*zi"}},
	{"fascist", []string{"f*scist", "fascism"}},
	{"self-harm", []string{"s*lf-h*rm"}},
	{"depression", []string{"d*pression", "depressed"}},
}

// violationResponses picks the reply shown instead of the user's turn.
// Categories without an entry fall back to genericViolationResponse.
var violationResponses = map[string]string{
	"kill":     "I can't help with anything related to violence or harm. Instead, let me help you discover peaceful and beautiful places to visit in Sri Lanka! 🏞️",
	"harm":     "I'm designed to help with travel planning and tourism information. Let's focus on positive experiences and beautiful destinations! ✨",
	"violence": "I can't assist with anything related to violence. Let me help you plan amazing cultural and natural experiences in Sri Lanka instead! 🏛️",
	"attack":   "I'm here to help you explore the beauty and culture of Sri Lanka safely. Let's plan something positive and enriching! 🌺",
	"weapon":   "I can't help with anything related to weapons or violence. How about we plan a safe and wonderful tour instead? 🚀",
	"bomb":     "I can't assist with anything related to explosives or dangerous activities. How about we plan a safe and wonderful tour instead? 🚀",
	"terror":   "I'm here to help you explore the beauty and culture of Sri Lanka safely. Let's plan something positive and enriching! 🌺",
	"murder":   "I can't help with anything related to violence. Let me help you plan amazing cultural and natural experiences in Sri Lanka instead! 🏛️",
	"die":      "I'm here to help you live life to the fullest by discovering amazing places! Let's plan an adventure that celebrates life! 🌟",
	"death":    "Let's focus on celebrating life and exploring beautiful places! I can help you plan wonderful experiences in Sri Lanka! 🌸",

	"profanity": "I understand you might be frustrated, but let's keep our conversation respectful. I'm here to help you plan amazing tours and share information about beautiful places in Sri Lanka! 🌸",
	"fuck":      "I understand you might be frustrated, but let's keep our conversation respectful. I'm here to help you plan amazing tours! 🌺",
	"shit":      "Let's keep our conversation positive! I'm excited to help you discover beautiful places in Sri Lanka! ✨",
	"damn":      "I'm here to help you plan wonderful experiences! Let's focus on the amazing destinations Sri Lanka has to offer! 🌟",
	"hell":      "Let's focus on heavenly places instead! I can help you discover paradise-like destinations in Sri Lanka! 🏝️",
	"bitch":     "I'm here to help you plan amazing tours! Let's keep our conversation respectful and positive! 🌸",
	"asshole":   "Let's keep our conversation friendly! I'm excited to help you explore beautiful Sri Lanka! 🌺",
	"bastard":   "I'm here to help you plan wonderful experiences! Let's focus on discovering amazing places together! ✨",
	"crap":      "Let's focus on the amazing instead! I can help you discover incredible destinations in Sri Lanka! 🌟",

	"hack":    "I can't help with anything related to hacking or cyber attacks. Let me help you plan amazing tours and discover beautiful places in Sri Lanka instead! 🔒",
	"malware": "I can't assist with anything related to malware or cyber threats. How about we plan a safe and wonderful tour instead? 🛡️",
	"steal":   "I can't help with anything related to theft or illegal activities. Let me help you plan amazing cultural and natural experiences in Sri Lanka instead! 🏛️",

	"drugs":   "I can't help with anything related to illegal substances. Let me help you discover beautiful and healthy experiences in Sri Lanka instead! 🌿",
	"meth":    "I can't assist with anything related to illegal substances. How about we plan a safe and wonderful tour instead? 🚀",
	"cocaine": "I can't help with anything related to illegal substances. Let me help you plan amazing cultural and natural experiences in Sri Lanka instead! 🏛️",

	"sex":                 "I'm designed to help with travel planning and tourism information. Let's focus on positive experiences and beautiful destinations! ✨",
	"porn":                "I can't help with anything related to adult content. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"prostitution":        "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"prostitute":          "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"escort":              "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"brothel":             "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"strip club":          "I can't help with anything related to adult entertainment or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"adult entertainment": "I can't help with anything related to adult entertainment or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"sexual services":     "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"sex worker":          "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"massage parlor":      "I can't help with anything related to adult services or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",
	"red light district":  "I can't help with anything related to adult entertainment or illegal activities. Let me help you discover beautiful places and plan amazing tours in Sri Lanka instead! 🌸",

	"racist": "I can't help with anything related to discrimination or hate speech. Let me help you discover the beautiful diversity and culture of Sri Lanka instead! 🌈",
	"hate":   "I'm here to help you explore the beauty and culture of Sri Lanka with respect and positivity. Let's plan something enriching! 🌺",

	"suicide":    "If you're going through a difficult time, please reach out to a mental health professional or crisis helpline. I'm here to help you discover beautiful places that might bring you joy! 🌈",
	"self-harm":  "If you're going through a difficult time, please reach out to a mental health professional or crisis helpline. I'm here to help you discover beautiful places that might bring you joy! 🌈",
	"depression": "If you're going through a difficult time, please reach out to a mental health professional or crisis helpline. I'm here to help you discover beautiful places that might bring you joy! 🌈",

	"sql injection": "I can't help with anything related to technical attacks. Let me help you plan amazing tours and discover beautiful places in Sri Lanka instead! 🔒",
	"xss":           "I can't assist with anything related to technical attacks. How about we plan a safe and wonderful tour instead? 🛡️",

	"raw_html_tag": "I can't help with anything related to code injection. Let me help you plan amazing tours and discover beautiful places in Sri Lanka instead! 🔒",
	"script":       "I can't assist with anything related to code injection. How about we plan a safe and wonderful tour instead? 🛡️",

	"spam":             "I can't help with repetitive or spam-like messages. Let me help you plan amazing tours and discover beautiful places in Sri Lanka instead! 🚫",
	"excessive_length": "Your message is too long. Please keep it concise and I'll help you plan amazing tours in Sri Lanka! 📝",
}

const genericViolationResponse = "I'm here to help you plan amazing tours and discover beautiful places in Sri Lanka! Let's keep our conversation positive and respectful! 🌸"
