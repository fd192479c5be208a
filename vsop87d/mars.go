package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Mars, truncated to the leading published terms.
var marsModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 6.20347711581, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.18656368093, Phase: 5.05037100270, Freq: 3340.61242669980},
			{Amp: 0.01108216816, Phase: 5.40099836344, Freq: 6681.22485339960},
			{Amp: 0.00091798406, Phase: 5.75478744667, Freq: 10021.83728009940},
			{Amp: 0.00027744987, Phase: 5.97049513147, Freq: 3.52311834900},
			{Amp: 0.00012315897, Phase: 0.84956094002, Freq: 2810.92146160520},
			{Amp: 0.00010610235, Phase: 2.93958560338, Freq: 2281.23049651060},
			{Amp: 0.00008926784, Phase: 4.15697846427, Freq: 0.01725365220},
			{Amp: 0.00008715691, Phase: 6.11005153139, Freq: 13362.44970679920},
			{Amp: 0.00007774872, Phase: 3.33968655074, Freq: 5621.84292321040},
			{Amp: 0.00006797556, Phase: 0.36462229657, Freq: 398.14900340820},
			{Amp: 0.00004161108, Phase: 0.22814971327, Freq: 2942.46342329160},
			{Amp: 0.00003575078, Phase: 1.66186505710, Freq: 2544.31441988340},
			{Amp: 0.00003075252, Phase: 0.85696614132, Freq: 191.44826611160},
			{Amp: 0.00002937546, Phase: 6.07893711402, Freq: 0.06731030280},
			{Amp: 0.00002628117, Phase: 0.64806124465, Freq: 3337.08930835080},
			{Amp: 0.00002579844, Phase: 0.02996736156, Freq: 3344.13554504880},
			{Amp: 0.00002389414, Phase: 5.03896442664, Freq: 796.29800681640},
			{Amp: 0.00001798806, Phase: 0.65634057445, Freq: 529.69096509460},
			{Amp: 0.00001546404, Phase: 2.91579701718, Freq: 1751.53953141600},
			{Amp: 0.00001528141, Phase: 1.14979301996, Freq: 6151.53388830500},
			{Amp: 0.00001286228, Phase: 3.06796065034, Freq: 2146.16541647520},
			{Amp: 0.00001264357, Phase: 3.62275122593, Freq: 5092.15195811580},
			{Amp: 0.00001024902, Phase: 3.69334099279, Freq: 8962.45534991020},
			{Amp: 0.00000891566, Phase: 0.18293837498, Freq: 16703.06213349900},
			{Amp: 0.00000858759, Phase: 2.40093811940, Freq: 2914.01423582380},
			{Amp: 0.00000832715, Phase: 2.46418619474, Freq: 3340.59517304760},
			{Amp: 0.00000832720, Phase: 4.49495782139, Freq: 3340.62968035200},
			{Amp: 0.00000748723, Phase: 3.82248614017, Freq: 155.42039943420},
			{Amp: 0.00000723861, Phase: 0.67497311481, Freq: 3738.76143010800},
			{Amp: 0.00000712902, Phase: 3.66335473479, Freq: 1059.38193018920},
			{Amp: 0.00000655162, Phase: 0.48864064125, Freq: 3127.31333126180},
			{Amp: 0.00000635548, Phase: 2.92182225127, Freq: 8432.76438481560},
			{Amp: 0.00000552750, Phase: 4.47479317037, Freq: 1748.01641306700},
			{Amp: 0.00000550474, Phase: 3.81001042328, Freq: 0.98032106820},
			{Amp: 0.00000472167, Phase: 3.62547124025, Freq: 1194.44701022460},
			{Amp: 0.00000425966, Phase: 0.55364317304, Freq: 6283.07584999140},
			{Amp: 0.00000415131, Phase: 0.49662285038, Freq: 213.29909543800},
			{Amp: 0.00000312141, Phase: 0.99853944405, Freq: 6677.70173505060},
			{Amp: 0.00000306551, Phase: 0.38052848348, Freq: 6684.74797174860},
		},
		{ // L1
			{Amp: 3340.85627474200, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01457554523, Phase: 3.60433733236, Freq: 3340.61242669980},
			{Amp: 0.00168414711, Phase: 3.92318567804, Freq: 6681.22485339960},
			{Amp: 0.00020622975, Phase: 4.26108844583, Freq: 10021.83728009940},
			{Amp: 0.00003452392, Phase: 4.73210393190, Freq: 3.52311834900},
			{Amp: 0.00002586332, Phase: 4.60670058555, Freq: 13362.44970679920},
			{Amp: 0.00000841535, Phase: 4.45864030426, Freq: 2281.23049651060},
			{Amp: 0.00000537567, Phase: 5.01581256923, Freq: 398.14900340820},
			{Amp: 0.00000521127, Phase: 4.99428054039, Freq: 3344.13554504880},
			{Amp: 0.00000432635, Phase: 2.56070853083, Freq: 191.44826611160},
			{Amp: 0.00000429655, Phase: 5.31645299471, Freq: 155.42039943420},
			{Amp: 0.00000381751, Phase: 3.53878166043, Freq: 796.29800681640},
		},
		{ // L2
			{Amp: 0.00058152577, Phase: 2.04961712429, Freq: 3340.61242669980},
			{Amp: 0.00013459579, Phase: 2.45738706163, Freq: 6681.22485339960},
			{Amp: 0.00002432575, Phase: 2.79737979284, Freq: 10021.83728009940},
			{Amp: 0.00000453071, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000401065, Phase: 3.13581149963, Freq: 13362.44970679920},
			{Amp: 0.00000222025, Phase: 3.19437046607, Freq: 3.52311834900},
			{Amp: 0.00000120954, Phase: 0.54327128607, Freq: 155.42039943420},
		},
		{ // L3
			{Amp: 0.00001482423, Phase: 0.44434694876, Freq: 3340.61242669980},
			{Amp: 0.00000662095, Phase: 0.88469178686, Freq: 6681.22485339960},
			{Amp: 0.00000188268, Phase: 1.28799982497, Freq: 10021.83728009940},
			{Amp: 0.00000041474, Phase: 1.55120884108, Freq: 13362.44970679920},
			{Amp: 0.00000022661, Phase: 0.00000000000, Freq: 0.00000000000},
		},
		{ // L4
			{Amp: 0.00000113969, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000028725, Phase: 5.63662412043, Freq: 6681.22485339960},
			{Amp: 0.00000024447, Phase: 5.13868481454, Freq: 3340.61242669980},
			{Amp: 0.00000011187, Phase: 6.03161074431, Freq: 10021.83728009940},
			{Amp: 0.00000003252, Phase: 0.13228350651, Freq: 13362.44970679920},
		},
		{ // L5
			{Amp: 0.00000000953, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000000862, Phase: 4.04089996521, Freq: 6681.22485339960},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.03197134986, Phase: 3.76832042431, Freq: 3340.61242669980},
			{Amp: 0.00298033234, Phase: 4.10616996305, Freq: 6681.22485339960},
			{Amp: 0.00289104742, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00031365539, Phase: 4.44651053090, Freq: 10021.83728009940},
			{Amp: 0.00003484100, Phase: 4.78812549260, Freq: 13362.44970679920},
			{Amp: 0.00000443401, Phase: 5.65233014206, Freq: 3337.08930835080},
			{Amp: 0.00000442999, Phase: 5.02642622964, Freq: 3344.13554504880},
			{Amp: 0.00000399109, Phase: 5.13056816928, Freq: 16703.06213349900},
			{Amp: 0.00000292506, Phase: 3.79290674880, Freq: 2281.23049651060},
			{Amp: 0.00000181982, Phase: 6.13648041445, Freq: 6151.53388830500},
			{Amp: 0.00000163159, Phase: 4.26399640691, Freq: 529.69096509460},
			{Amp: 0.00000159678, Phase: 2.23194572851, Freq: 1059.38193018920},
			{Amp: 0.00000139323, Phase: 2.41796458896, Freq: 8962.45534991020},
		},
		{ // B1
			{Amp: 0.00350068845, Phase: 5.36847836211, Freq: 3340.61242669980},
			{Amp: 0.00014116030, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00009670755, Phase: 5.47877786506, Freq: 6681.22485339960},
			{Amp: 0.00001471918, Phase: 3.20205766795, Freq: 10021.83728009940},
			{Amp: 0.00000425864, Phase: 3.40843812875, Freq: 13362.44970679920},
			{Amp: 0.00000102039, Phase: 0.77617286189, Freq: 3337.08930835080},
			{Amp: 0.00000078848, Phase: 3.71768293865, Freq: 16703.06213349900},
		},
		{ // B2
			{Amp: 0.00016726690, Phase: 0.60221392419, Freq: 3340.61242669980},
			{Amp: 0.00004986799, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000302141, Phase: 5.55871276021, Freq: 6681.22485339960},
			{Amp: 0.00000025767, Phase: 1.89662673499, Freq: 13362.44970679920},
			{Amp: 0.00000021452, Phase: 0.91749968618, Freq: 10021.83728009940},
		},
		{ // B3
			{Amp: 0.00000607506, Phase: 1.98050633529, Freq: 3340.61242669980},
			{Amp: 0.00000042611, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000013652, Phase: 1.79588228800, Freq: 6681.22485339960},
		},
		{ // B4
			{Amp: 0.00000013105, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000011334, Phase: 3.45724352586, Freq: 3340.61242669980},
		},
		{ // B5
			{Amp: 0.00000000457, Phase: 4.86794125358, Freq: 3340.61242669980},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 1.53033488271, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.14184953160, Phase: 3.47971283528, Freq: 3340.61242669980},
			{Amp: 0.00660776362, Phase: 3.81783443019, Freq: 6681.22485339960},
			{Amp: 0.00046179117, Phase: 4.15595316782, Freq: 10021.83728009940},
			{Amp: 0.00008109733, Phase: 5.55958416318, Freq: 2810.92146160520},
			{Amp: 0.00007485318, Phase: 1.77239078402, Freq: 5621.84292321040},
			{Amp: 0.00005523191, Phase: 1.36436303770, Freq: 2281.23049651060},
			{Amp: 0.00003825160, Phase: 4.49407183687, Freq: 13362.44970679920},
			{Amp: 0.00002484394, Phase: 4.92545639920, Freq: 2942.46342329160},
			{Amp: 0.00002306537, Phase: 0.09081579001, Freq: 2544.31441988340},
			{Amp: 0.00001999396, Phase: 5.36059617709, Freq: 3337.08930835080},
			{Amp: 0.00001960195, Phase: 4.74249437639, Freq: 3344.13554504880},
			{Amp: 0.00001167119, Phase: 2.11260868341, Freq: 5092.15195811580},
			{Amp: 0.00001102816, Phase: 5.00908403998, Freq: 398.14900340820},
			{Amp: 0.00000992252, Phase: 5.83861961952, Freq: 6151.53388830500},
			{Amp: 0.00000899066, Phase: 4.40791133207, Freq: 529.69096509460},
			{Amp: 0.00000807354, Phase: 2.10217065501, Freq: 1059.38193018920},
			{Amp: 0.00000797915, Phase: 3.44839203899, Freq: 796.29800681640},
			{Amp: 0.00000740975, Phase: 1.49906336885, Freq: 2146.16541647520},
		},
		{ // R1
			{Amp: 0.01107433345, Phase: 2.03250524857, Freq: 3340.61242669980},
			{Amp: 0.00103175887, Phase: 2.37071847807, Freq: 6681.22485339960},
			{Amp: 0.00012877200, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00010815880, Phase: 2.70888095665, Freq: 10021.83728009940},
			{Amp: 0.00001194550, Phase: 3.04702256206, Freq: 13362.44970679920},
			{Amp: 0.00000438564, Phase: 2.88835054603, Freq: 2281.23049651060},
			{Amp: 0.00000373711, Phase: 3.62089224518, Freq: 3344.13554504880},
		},
		{ // R2
			{Amp: 0.00044242249, Phase: 0.47930604954, Freq: 3340.61242669980},
			{Amp: 0.00008138042, Phase: 0.86998389204, Freq: 6681.22485339960},
			{Amp: 0.00001274915, Phase: 1.22593985222, Freq: 10021.83728009940},
			{Amp: 0.00000187388, Phase: 1.57298991982, Freq: 13362.44970679920},
			{Amp: 0.00000052396, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000026617, Phase: 1.91665337822, Freq: 16703.06213349900},
		},
		{ // R3
			{Amp: 0.00001113108, Phase: 5.14987305093, Freq: 3340.61242669980},
			{Amp: 0.00000424447, Phase: 5.61343952053, Freq: 6681.22485339960},
			{Amp: 0.00000100044, Phase: 5.99727457026, Freq: 10021.83728009940},
			{Amp: 0.00000019606, Phase: 0.07631453783, Freq: 13362.44970679920},
		},
		{ // R4
			{Amp: 0.00000001969, Phase: 3.58211650473, Freq: 3340.61242669980},
		},
	},
}
