package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Jupiter, truncated to the leading published terms.
var jupiterModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 0.59954691494, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.09695898719, Phase: 5.06191793158, Freq: 529.69096509460},
			{Amp: 0.00573610142, Phase: 1.44406205629, Freq: 7.11354700080},
			{Amp: 0.00306389205, Phase: 5.41734730184, Freq: 1059.38193018920},
			{Amp: 0.00097178296, Phase: 4.14264726552, Freq: 632.78373931320},
			{Amp: 0.00072903078, Phase: 3.64042916389, Freq: 522.57741809380},
			{Amp: 0.00064263975, Phase: 3.41145165351, Freq: 103.09277421860},
			{Amp: 0.00039806064, Phase: 2.29376740788, Freq: 419.48464387520},
			{Amp: 0.00038857767, Phase: 1.27231755835, Freq: 316.39186965660},
			{Amp: 0.00027964629, Phase: 1.78454591820, Freq: 536.80451209540},
			{Amp: 0.00013589730, Phase: 5.77481040790, Freq: 1589.07289528380},
			{Amp: 0.00008768704, Phase: 3.63000308199, Freq: 949.17560896980},
			{Amp: 0.00008246349, Phase: 3.58227925840, Freq: 206.18554843720},
			{Amp: 0.00007368042, Phase: 5.08101194270, Freq: 735.87651353180},
			{Amp: 0.00006263150, Phase: 0.02497628807, Freq: 213.29909543800},
			{Amp: 0.00006114062, Phase: 4.51319998626, Freq: 1162.47470440780},
			{Amp: 0.00005305441, Phase: 4.18625634012, Freq: 1052.26838318840},
			{Amp: 0.00005305285, Phase: 1.30671216791, Freq: 14.22709400160},
			{Amp: 0.00004905396, Phase: 1.32084470588, Freq: 110.20632121940},
			{Amp: 0.00004647248, Phase: 4.69958103684, Freq: 3.93215326310},
			{Amp: 0.00003045023, Phase: 4.31676431084, Freq: 426.59819087600},
			{Amp: 0.00002609999, Phase: 1.56667394063, Freq: 846.08283475120},
			{Amp: 0.00002028191, Phase: 1.06376530715, Freq: 3.18139373770},
			{Amp: 0.00001920945, Phase: 0.97168196472, Freq: 639.89728631400},
			{Amp: 0.00001764763, Phase: 2.14148655117, Freq: 1066.49547719000},
			{Amp: 0.00001722972, Phase: 3.88036268267, Freq: 1265.56747862640},
			{Amp: 0.00001633223, Phase: 3.58201833555, Freq: 515.46387109300},
			{Amp: 0.00001431999, Phase: 4.29685556046, Freq: 625.67019231240},
			{Amp: 0.00000973272, Phase: 4.09764549134, Freq: 95.97922721780},
		},
		{ // L1
			{Amp: 529.93480757200, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00489503243, Phase: 4.22082939470, Freq: 529.69096509460},
			{Amp: 0.00228917222, Phase: 6.02646855621, Freq: 7.11354700080},
			{Amp: 0.00030099479, Phase: 4.54540782858, Freq: 1059.38193018920},
			{Amp: 0.00020720920, Phase: 5.45943156902, Freq: 522.57741809380},
			{Amp: 0.00012103653, Phase: 0.16994816098, Freq: 536.80451209540},
			{Amp: 0.00006067987, Phase: 4.42422292017, Freq: 103.09277421860},
			{Amp: 0.00005433968, Phase: 3.98480737746, Freq: 419.48464387520},
			{Amp: 0.00004237744, Phase: 5.89008707199, Freq: 14.22709400160},
			{Amp: 0.00002211974, Phase: 5.26766687382, Freq: 206.18554843720},
			{Amp: 0.00001295769, Phase: 5.55132765087, Freq: 632.78373931320},
			{Amp: 0.00001173129, Phase: 5.85647304350, Freq: 1052.26838318840},
			{Amp: 0.00001163411, Phase: 0.51450895328, Freq: 3.93215326310},
			{Amp: 0.00001098954, Phase: 5.30704980412, Freq: 515.46387109300},
			{Amp: 0.00001007216, Phase: 0.46478398551, Freq: 735.87651353180},
			{Amp: 0.00001004911, Phase: 3.15040301822, Freq: 1162.47470440780},
			{Amp: 0.00000848219, Phase: 5.75805850450, Freq: 110.20632121940},
			{Amp: 0.00000827329, Phase: 4.80312015734, Freq: 213.29909543800},
			{Amp: 0.00000816354, Phase: 0.58643054886, Freq: 1066.49547719000},
			{Amp: 0.00000725583, Phase: 5.51827471473, Freq: 639.89728631400},
			{Amp: 0.00000568232, Phase: 5.98867049451, Freq: 625.67019231240},
			{Amp: 0.00000474262, Phase: 4.13245269168, Freq: 412.37109687440},
			{Amp: 0.00000412930, Phase: 5.73652891261, Freq: 95.97922721780},
		},
		{ // L2
			{Amp: 0.00047233601, Phase: 4.32148536482, Freq: 7.11354700080},
			{Amp: 0.00030649436, Phase: 2.92977788700, Freq: 529.69096509460},
			{Amp: 0.00014837605, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00003189359, Phase: 1.05515491122, Freq: 522.57741809380},
			{Amp: 0.00002728901, Phase: 4.84555421873, Freq: 536.80451209540},
			{Amp: 0.00002722606, Phase: 3.41408592134, Freq: 1059.38193018920},
			{Amp: 0.00001721427, Phase: 4.18729903895, Freq: 14.22709400160},
			{Amp: 0.00000916033, Phase: 0.57153903386, Freq: 632.78373931320},
			{Amp: 0.00000905625, Phase: 3.96558941733, Freq: 1066.49547719000},
			{Amp: 0.00000904931, Phase: 1.97743546362, Freq: 206.18554843720},
		},
		{ // L3
			{Amp: 0.00006501665, Phase: 2.59862880482, Freq: 7.11354700080},
			{Amp: 0.00001356524, Phase: 1.34635886411, Freq: 529.69096509460},
			{Amp: 0.00000470716, Phase: 2.47503977883, Freq: 14.22709400160},
			{Amp: 0.00000416960, Phase: 3.24451243214, Freq: 536.80451209540},
			{Amp: 0.00000352851, Phase: 2.97360159003, Freq: 522.57741809380},
			{Amp: 0.00000154880, Phase: 2.07565585817, Freq: 1059.38193018920},
			{Amp: 0.00000086771, Phase: 2.51431584316, Freq: 515.46387109300},
			{Amp: 0.00000044256, Phase: 0.00000000000, Freq: 0.00000000000},
		},
		{ // L4
			{Amp: 0.00000669483, Phase: 0.85280417499, Freq: 7.11354700080},
			{Amp: 0.00000113992, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000100396, Phase: 0.74279018366, Freq: 14.22709400160},
			{Amp: 0.00000050091, Phase: 1.65346208248, Freq: 536.80451209540},
			{Amp: 0.00000043606, Phase: 5.82026386621, Freq: 529.69096509460},
		},
		{ // L5
			{Amp: 0.00000049577, Phase: 5.25658966184, Freq: 7.11354700080},
			{Amp: 0.00000015761, Phase: 5.25126837478, Freq: 14.22709400160},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.02268615702, Phase: 3.55852606721, Freq: 529.69096509460},
			{Amp: 0.00110090358, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00109971634, Phase: 3.90809347197, Freq: 1059.38193018920},
			{Amp: 0.00008101428, Phase: 3.60509572885, Freq: 522.57741809380},
			{Amp: 0.00006043996, Phase: 4.25883108339, Freq: 1589.07289528380},
			{Amp: 0.00006437782, Phase: 0.30627119215, Freq: 536.80451209540},
			{Amp: 0.00001106880, Phase: 2.98534421928, Freq: 1162.47470440780},
			{Amp: 0.00000944328, Phase: 1.67522288396, Freq: 426.59819087600},
			{Amp: 0.00000942125, Phase: 2.93619072405, Freq: 1052.26838318840},
			{Amp: 0.00000894394, Phase: 1.75447429921, Freq: 7.11354700080},
			{Amp: 0.00000836256, Phase: 5.17881973234, Freq: 103.09277421860},
		},
		{ // B1
			{Amp: 0.00078203446, Phase: 1.52377859742, Freq: 529.69096509460},
			{Amp: 0.00007608274, Phase: 5.59420344388, Freq: 1059.38193018920},
			{Amp: 0.00003520979, Phase: 4.96027111215, Freq: 522.57741809380},
			{Amp: 0.00001827919, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00001090891, Phase: 1.61318544864, Freq: 536.80451209540},
			{Amp: 0.00000972336, Phase: 4.09910906734, Freq: 7.11354700080},
		},
		{ // B2
			{Amp: 0.00002088868, Phase: 1.88973156222, Freq: 529.69096509460},
			{Amp: 0.00000437286, Phase: 4.14281559087, Freq: 1059.38193018920},
			{Amp: 0.00000285910, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000168102, Phase: 5.26106051382, Freq: 522.57741809380},
		},
		{ // B3
			{Amp: 0.00000113613, Phase: 4.31623533929, Freq: 529.69096509460},
			{Amp: 0.00000028546, Phase: 0.00000000000, Freq: 0.00000000000},
		},
		{ // B4
			{Amp: 0.00000016623, Phase: 1.83849014781, Freq: 529.69096509460},
		},
		{ // B5
			{Amp: 0.00000000113, Phase: 4.72869889891, Freq: 529.69096509460},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 5.20887429326, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.25209327119, Phase: 3.49108639871, Freq: 529.69096509460},
			{Amp: 0.00610599976, Phase: 3.84115365948, Freq: 1059.38193018920},
			{Amp: 0.00282029458, Phase: 2.57419881293, Freq: 632.78373931320},
			{Amp: 0.00187647346, Phase: 2.07590383214, Freq: 522.57741809380},
			{Amp: 0.00086792905, Phase: 0.71001145545, Freq: 419.48464387520},
			{Amp: 0.00072062974, Phase: 0.21465724607, Freq: 536.80451209540},
			{Amp: 0.00065517248, Phase: 5.97995884790, Freq: 316.39186965660},
			{Amp: 0.00030135335, Phase: 2.16132003734, Freq: 949.17560896980},
			{Amp: 0.00029134542, Phase: 1.67759379655, Freq: 103.09277421860},
			{Amp: 0.00023947298, Phase: 0.27458037480, Freq: 7.11354700080},
			{Amp: 0.00023453271, Phase: 3.54023522184, Freq: 735.87651353180},
			{Amp: 0.00022283743, Phase: 4.19362594399, Freq: 1589.07289528380},
			{Amp: 0.00013032614, Phase: 2.96042965363, Freq: 1162.47470440780},
			{Amp: 0.00012749023, Phase: 2.71550286592, Freq: 1052.26838318840},
			{Amp: 0.00009703360, Phase: 1.90669633585, Freq: 206.18554843720},
			{Amp: 0.00007057931, Phase: 2.18184839926, Freq: 1265.56747862640},
			{Amp: 0.00006137703, Phase: 6.26418240033, Freq: 846.08283475120},
			{Amp: 0.00002616976, Phase: 2.00994012876, Freq: 1581.95934828300},
		},
		{ // R1
			{Amp: 0.01271801520, Phase: 2.64937512894, Freq: 529.69096509460},
			{Amp: 0.00061661816, Phase: 3.00076460387, Freq: 1059.38193018920},
			{Amp: 0.00053443713, Phase: 3.89717383175, Freq: 522.57741809380},
			{Amp: 0.00041390269, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00031185171, Phase: 4.88276958012, Freq: 536.80451209540},
			{Amp: 0.00011847263, Phase: 2.41329588176, Freq: 419.48464387520},
			{Amp: 0.00009166454, Phase: 4.75979408587, Freq: 7.11354700080},
			{Amp: 0.00003404341, Phase: 3.34688537997, Freq: 1589.07289528380},
			{Amp: 0.00003203427, Phase: 5.21083285476, Freq: 735.87651353180},
			{Amp: 0.00003176320, Phase: 2.79297987071, Freq: 103.09277421860},
		},
		{ // R2
			{Amp: 0.00079644957, Phase: 1.35865949884, Freq: 529.69096509460},
			{Amp: 0.00008251645, Phase: 5.77773935444, Freq: 522.57741809380},
			{Amp: 0.00007029910, Phase: 3.27476965833, Freq: 536.80451209540},
			{Amp: 0.00005314002, Phase: 1.83835109712, Freq: 1059.38193018920},
			{Amp: 0.00001860805, Phase: 2.97682139367, Freq: 7.11354700080},
			{Amp: 0.00000963833, Phase: 5.48031822015, Freq: 515.46387109300},
			{Amp: 0.00000836267, Phase: 4.19888881718, Freq: 419.48464387520},
		},
		{ // R3
			{Amp: 0.00003519243, Phase: 6.05800633846, Freq: 529.69096509460},
			{Amp: 0.00001073206, Phase: 1.67321345760, Freq: 536.80451209540},
			{Amp: 0.00000915625, Phase: 1.41329676116, Freq: 522.57741809380},
			{Amp: 0.00000341618, Phase: 0.52296542656, Freq: 1059.38193018920},
			{Amp: 0.00000254889, Phase: 1.19625473533, Freq: 7.11354700080},
		},
		{ // R4
			{Amp: 0.00000128628, Phase: 0.08193308794, Freq: 529.69096509460},
			{Amp: 0.00000113458, Phase: 4.24858855779, Freq: 536.80451209540},
			{Amp: 0.00000082650, Phase: 3.29754909408, Freq: 522.57741809380},
			{Amp: 0.00000037883, Phase: 2.73326611144, Freq: 515.46387109300},
		},
	},
}
