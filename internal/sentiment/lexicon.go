package sentiment

// baseLexicon is an AFINN-style word valence table covering the
// general-purpose vocabulary. Weights range -5..5.
var baseLexicon = map[string]int{
	"abandon":      -2,
	"abuse":        -3,
	"accept":       1,
	"accomplish":   2,
	"admire":       3,
	"adore":        3,
	"advantage":    2,
	"adventure":    2,
	"afraid":       -2,
	"aggressive":   -2,
	"agree":        1,
	"alarm":        -2,
	"alone":        -2,
	"angry":        -3,
	"annoy":        -2,
	"annoying":     -2,
	"anxious":      -2,
	"apology":      -1,
	"appreciate":   2,
	"arrogant":     -2,
	"ashamed":      -2,
	"attack":       -1,
	"attractive":   2,
	"avoid":        -1,
	"award":        3,
	"awful":        -3,
	"bad":          -3,
	"beautiful":    3,
	"benefit":      2,
	"best":         3,
	"betray":       -3,
	"better":       2,
	"bitter":       -2,
	"blame":        -2,
	"block":        -1,
	"boring":       -3,
	"boycott":      -2,
	"brave":        2,
	"breathtaking": 5,
	"bright":       1,
	"brilliant":    4,
	"broken":       -1,
	"calm":         2,
	"cancel":       -1,
	"care":         2,
	"celebrate":    3,
	"champion":     2,
	"chaos":        -2,
	"charm":        3,
	"cheat":        -3,
	"cheerful":     2,
	"clean":        2,
	"clever":       2,
	"comfort":      2,
	"complain":     -2,
	"confident":    2,
	"confuse":      -2,
	"confused":     -2,
	"congratulations": 2,
	"cool":         1,
	"corrupt":      -3,
	"courage":      2,
	"crisis":       -3,
	"cruel":        -3,
	"cry":          -1,
	"curious":      1,
	"cut":          -1,
	"damage":       -3,
	"danger":       -2,
	"dead":         -3,
	"defeat":       -2,
	"delay":        -1,
	"delight":      3,
	"denied":       -2,
	"deny":         -2,
	"depressed":    -2,
	"desperate":    -3,
	"destroy":      -3,
	"difficult":    -1,
	"dirty":        -2,
	"disagree":     -2,
	"disaster":     -4,
	"dishonest":    -2,
	"dislike":      -2,
	"dismal":       -2,
	"distrust":     -3,
	"doubt":        -1,
	"dream":        1,
	"dull":         -2,
	"eager":        2,
	"easy":         1,
	"efficient":    2,
	"elegant":      2,
	"embarrassed":  -2,
	"empty":        -1,
	"encourage":    2,
	"enjoy":        2,
	"enthusiastic": 3,
	"error":        -2,
	"evil":         -3,
	"exceptional":  3,
	"exciting":     3,
	"expensive":    -1,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"fair":         2,
	"fake":         -3,
	"fantastic":    4,
	"fear":         -2,
	"fine":         2,
	"fit":          1,
	"fix":          1,
	"flawless":     2,
	"forget":       -1,
	"fraud":        -4,
	"free":         1,
	"friendly":     2,
	"frustrated":   -2,
	"frustrating":  -2,
	"fun":          4,
	"funny":        4,
	"generous":     2,
	"gift":         2,
	"glad":         3,
	"good":         3,
	"grateful":     3,
	"great":        3,
	"greed":        -3,
	"growth":       2,
	"happy":        3,
	"harm":         -2,
	"hate":         -3,
	"hatred":       -3,
	"haunting":     -1,
	"heal":         2,
	"hell":         -4,
	"help":         2,
	"helpful":      2,
	"hero":         2,
	"honest":       2,
	"hope":         2,
	"hopeful":      2,
	"hopeless":     -2,
	"hurt":         -2,
	"ignorant":     -2,
	"ignore":       -1,
	"improve":      2,
	"improvement":  2,
	"inadequate":   -2,
	"insane":       -2,
	"inspire":      2,
	"inspiring":    3,
	"insult":       -2,
	"interesting":  2,
	"jealous":      -2,
	"jeopardy":     -2,
	"joke":         2,
	"joy":          3,
	"justice":      2,
	"kill":         -3,
	"kind":         2,
	"lack":         -2,
	"lame":         -2,
	"lazy":         -1,
	"liar":         -3,
	"lie":          -2,
	"like":         2,
	"limited":      -1,
	"lose":         -3,
	"loser":        -3,
	"loss":         -3,
	"lost":         -3,
	"love":         3,
	"lovely":       3,
	"lucky":        3,
	"mad":          -3,
	"magnificent":  4,
	"mess":         -2,
	"miss":         -2,
	"mistake":      -2,
	"motivated":    2,
	"murder":       -2,
	"nasty":        -3,
	"nervous":      -2,
	"nice":         3,
	"noisy":        -1,
	"obsolete":     -2,
	"offensive":    -2,
	"optimistic":   2,
	"pain":         -2,
	"painful":      -2,
	"panic":        -3,
	"peace":        2,
	"peaceful":     2,
	"perfect":      3,
	"pleasant":     3,
	"pleased":      3,
	"pleasure":     3,
	"poor":         -2,
	"popular":      3,
	"positive":     2,
	"powerful":     2,
	"pretty":       1,
	"problem":      -2,
	"progress":     2,
	"promise":      1,
	"protect":      1,
	"proud":        2,
	"punish":       -2,
	"quality":     1,
	"rage":         -2,
	"reckless":     -2,
	"recommend":    2,
	"regret":       -2,
	"reject":       -1,
	"relax":        2,
	"relief":       1,
	"reliable":     2,
	"rescue":       2,
	"respect":      2,
	"reward":       2,
	"rich":         2,
	"risk":         -2,
	"robust":       2,
	"rude":         -2,
	"ruin":         -2,
	"sad":          -2,
	"safe":         1,
	"satisfied":    2,
	"save":         2,
	"scam":         -2,
	"scandal":      -3,
	"scared":       -2,
	"scary":        -2,
	"secure":       2,
	"sick":         -2,
	"significant":  1,
	"smart":        1,
	"smile":        2,
	"solid":        2,
	"solution":     1,
	"solve":        1,
	"sorry":        -1,
	"spam":         -2,
	"stable":       2,
	"steal":        -2,
	"stolen":       -2,
	"strange":      -1,
	"stress":       -1,
	"strike":       -1,
	"strong":       2,
	"struggle":     -2,
	"stuck":        -2,
	"stupid":       -2,
	"success":      2,
	"successful":   3,
	"suffer":       -2,
	"superb":       5,
	"superior":     2,
	"support":      2,
	"sweet":        2,
	"terrific":     4,
	"thank":        2,
	"thanks":       2,
	"threat":       -2,
	"thrilled":     5,
	"tired":        -2,
	"tragedy":      -2,
	"tragic":       -2,
	"trouble":      -2,
	"trust":        1,
	"ugly":         -3,
	"unfair":       -2,
	"unhappy":      -2,
	"unreliable":   -2,
	"unstable":     -2,
	"upset":        -2,
	"useful":       2,
	"useless":      -2,
	"victory":      3,
	"violence":     -3,
	"vulnerable":   -2,
	"war":          -2,
	"warm":         1,
	"waste":        -1,
	"weak":         -2,
	"welcome":      2,
	"win":          4,
	"winner":       4,
	"wonderful":    4,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"worthless":    -2,
	"worthy":       2,
	"wow":          4,
	"wrong":        -2,
}

// domainLexicon carries product and tech vocabulary plus emoticons.
// Entries here override the base table on conflict.
var domainLexicon = map[string]int{
	// Tech terms
	"bug":           -2,
	"crash":         -3,
	"feature":       2,
	"innovative":    3,
	"intuitive":     2,
	"laggy":         -2,
	"seamless":      3,
	"slow":          -1,
	"user-friendly": 3,

	// Product sentiment
	"amazing":       4,
	"awesome":       4,
	"disappointing": -3,
	"excellent":     4,
	"fantastic":     4,
	"horrible":      -4,
	"incredible":    4,
	"mediocre":      -2,
	"outstanding":   5,
	"terrible":      -4,

	// Emoticons
	":)": 2,
	":(": -2,
	":d": 3,
	":/": -1,
	":p": 1,
}
