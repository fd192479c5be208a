package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Earth, truncated to the leading published terms.
// Latitude carries no power-5 series in this truncation of the theory.
var earthModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 1.75347045673, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.03341656453, Phase: 4.66925680415, Freq: 6283.07584999140},
			{Amp: 0.00034894275, Phase: 4.62610242189, Freq: 12566.15169998280},
			{Amp: 0.00003497056, Phase: 2.74411783405, Freq: 5753.38488489680},
			{Amp: 0.00003417572, Phase: 2.82886579754, Freq: 3.52311834900},
			{Amp: 0.00003135899, Phase: 3.62767041756, Freq: 77713.77146812050},
			{Amp: 0.00002676218, Phase: 4.41808345438, Freq: 7860.41939243920},
			{Amp: 0.00002342691, Phase: 6.13516214446, Freq: 3930.20969621960},
			{Amp: 0.00001324294, Phase: 0.74246341673, Freq: 11506.76976979360},
			{Amp: 0.00001273165, Phase: 2.03709657878, Freq: 529.69096509460},
			{Amp: 0.00001199167, Phase: 1.10962946234, Freq: 1577.34354244780},
			{Amp: 0.00000990250, Phase: 5.23268072088, Freq: 5884.92684658320},
			{Amp: 0.00000901854, Phase: 2.04505446477, Freq: 26.29831979980},
			{Amp: 0.00000857223, Phase: 3.50849152283, Freq: 398.14900340820},
			{Amp: 0.00000779786, Phase: 1.17882681962, Freq: 5223.69391980220},
			{Amp: 0.00000753141, Phase: 2.53339052847, Freq: 5507.55323866740},
			{Amp: 0.00000505267, Phase: 4.58292599973, Freq: 18849.22754997420},
			{Amp: 0.00000492392, Phase: 4.20506639861, Freq: 775.52261132400},
			{Amp: 0.00000356672, Phase: 2.91954114478, Freq: 0.06731030280},
			{Amp: 0.00000317087, Phase: 5.84901948512, Freq: 11790.62908865880},
			{Amp: 0.00000284125, Phase: 1.89869240932, Freq: 796.29800681640},
			{Amp: 0.00000271112, Phase: 0.31486255375, Freq: 10977.07880469900},
			{Amp: 0.00000242879, Phase: 0.34481445893, Freq: 5486.77784317500},
			{Amp: 0.00000206217, Phase: 4.80646631478, Freq: 2544.31441988340},
			{Amp: 0.00000205478, Phase: 1.86953770281, Freq: 5573.14280143310},
			{Amp: 0.00000202318, Phase: 2.45767790232, Freq: 6069.77675455340},
			{Amp: 0.00000155516, Phase: 0.83306084617, Freq: 213.29909543800},
			{Amp: 0.00000132212, Phase: 3.41118275555, Freq: 2942.46342329160},
			{Amp: 0.00000126225, Phase: 1.08295459501, Freq: 20.77539549240},
			{Amp: 0.00000115132, Phase: 0.64544911683, Freq: 0.98032106820},
			{Amp: 0.00000102851, Phase: 0.63563546955, Freq: 4694.00295470760},
			{Amp: 0.00000101895, Phase: 0.97569221824, Freq: 15720.83878487840},
			{Amp: 0.00000101724, Phase: 4.26679821365, Freq: 7.11354700080},
			{Amp: 0.00000099206, Phase: 6.20992940258, Freq: 2146.16541647520},
			{Amp: 0.00000097607, Phase: 0.68101272270, Freq: 155.42039943420},
			{Amp: 0.00000085803, Phase: 5.98322631256, Freq: 161000.68573767410},
			{Amp: 0.00000085128, Phase: 1.29870743025, Freq: 6275.96230299060},
			{Amp: 0.00000084711, Phase: 3.67080093025, Freq: 71430.69561812909},
			{Amp: 0.00000079637, Phase: 1.80791330700, Freq: 17260.15465469040},
			{Amp: 0.00000078756, Phase: 3.03698313141, Freq: 12036.46073488820},
			{Amp: 0.00000074651, Phase: 1.75508916159, Freq: 5088.62883976680},
			{Amp: 0.00000073874, Phase: 3.50319443167, Freq: 3154.68708489560},
			{Amp: 0.00000073547, Phase: 4.67926565481, Freq: 801.82093112380},
			{Amp: 0.00000069627, Phase: 0.83297596966, Freq: 9437.76293488700},
			{Amp: 0.00000062449, Phase: 3.97763880587, Freq: 8827.39026987480},
			{Amp: 0.00000061148, Phase: 1.81839811024, Freq: 7084.89678111520},
			{Amp: 0.00000056963, Phase: 2.78430398043, Freq: 6286.59896834040},
			{Amp: 0.00000056116, Phase: 4.38694880779, Freq: 14143.49524243060},
			{Amp: 0.00000055577, Phase: 3.47006009062, Freq: 6279.55273164240},
			{Amp: 0.00000051992, Phase: 0.18914945834, Freq: 12139.55350910680},
			{Amp: 0.00000051605, Phase: 1.33282746983, Freq: 1748.01641306700},
			{Amp: 0.00000051145, Phase: 0.28306864501, Freq: 5856.47765911540},
			{Amp: 0.00000049000, Phase: 0.48735065033, Freq: 1194.44701022460},
			{Amp: 0.00000041036, Phase: 5.36817351402, Freq: 8429.24126646660},
			{Amp: 0.00000039200, Phase: 6.16832995016, Freq: 10447.38783960440},
			{Amp: 0.00000036770, Phase: 6.04133859347, Freq: 10213.28554621100},
			{Amp: 0.00000036596, Phase: 2.56955238628, Freq: 1059.38193018920},
			{Amp: 0.00000035954, Phase: 1.70876111898, Freq: 2352.86615377180},
			{Amp: 0.00000035566, Phase: 1.77597314691, Freq: 6812.76681508600},
			{Amp: 0.00000033291, Phase: 0.59309499459, Freq: 17789.84561978500},
		},
		{ // L1
			{Amp: 6283.31966747491, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00206058863, Phase: 2.67823455584, Freq: 6283.07584999140},
			{Amp: 0.00004303430, Phase: 2.63512650414, Freq: 12566.15169998280},
			{Amp: 0.00000425264, Phase: 1.59046980729, Freq: 3.52311834900},
			{Amp: 0.00000119261, Phase: 5.79557487799, Freq: 26.29831979980},
			{Amp: 0.00000108977, Phase: 2.96618001993, Freq: 1577.34354244780},
			{Amp: 0.00000093478, Phase: 2.59212835365, Freq: 18849.22754997420},
			{Amp: 0.00000072122, Phase: 1.13846158196, Freq: 529.69096509460},
			{Amp: 0.00000067768, Phase: 1.87472304791, Freq: 398.14900340820},
			{Amp: 0.00000067327, Phase: 4.40918235168, Freq: 5507.55323866740},
			{Amp: 0.00000059027, Phase: 2.88797038460, Freq: 5223.69391980220},
			{Amp: 0.00000055976, Phase: 2.17471680261, Freq: 155.42039943420},
			{Amp: 0.00000045407, Phase: 0.39803079805, Freq: 796.29800681640},
			{Amp: 0.00000036369, Phase: 0.46624739835, Freq: 775.52261132400},
			{Amp: 0.00000028958, Phase: 2.64707383882, Freq: 7.11354700080},
			{Amp: 0.00000020844, Phase: 5.34138275149, Freq: 0.98032106820},
			{Amp: 0.00000019097, Phase: 1.84628332577, Freq: 5486.77784317500},
			{Amp: 0.00000018508, Phase: 4.96855124577, Freq: 213.29909543800},
			{Amp: 0.00000017293, Phase: 2.99116864949, Freq: 6275.96230299060},
			{Amp: 0.00000016233, Phase: 0.03216483047, Freq: 2544.31441988340},
		},
		{ // L2
			{Amp: 0.00052918870, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00008719837, Phase: 1.07209665242, Freq: 6283.07584999140},
			{Amp: 0.00000309125, Phase: 0.86728818832, Freq: 12566.15169998280},
			{Amp: 0.00000027339, Phase: 0.05297871691, Freq: 3.52311834900},
			{Amp: 0.00000016334, Phase: 5.18826691036, Freq: 26.29831979980},
			{Amp: 0.00000015752, Phase: 3.68457889430, Freq: 155.42039943420},
			{Amp: 0.00000009541, Phase: 0.75742297675, Freq: 18849.22754997420},
			{Amp: 0.00000008937, Phase: 2.05705419118, Freq: 77713.77146812050},
			{Amp: 0.00000006952, Phase: 0.82673305410, Freq: 775.52261132400},
			{Amp: 0.00000005064, Phase: 4.66284525271, Freq: 1577.34354244780},
		},
		{ // L3
			{Amp: 0.00000289226, Phase: 5.84384198723, Freq: 6283.07584999140},
			{Amp: 0.00000034955, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000016819, Phase: 5.48766912348, Freq: 12566.15169998280},
		},
		{ // L4
			{Amp: 0.00000114084, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000007717, Phase: 4.13446589358, Freq: 6283.07584999140},
			{Amp: 0.00000000765, Phase: 3.83803776214, Freq: 12566.15169998280},
		},
		{ // L5
			{Amp: 0.00000000878, Phase: 3.14159265359, Freq: 0.00000000000},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.00000279620, Phase: 3.19870156017, Freq: 84334.66158130829},
			{Amp: 0.00000101643, Phase: 5.42248619256, Freq: 5507.55323866740},
			{Amp: 0.00000080445, Phase: 3.88013204458, Freq: 5223.69391980220},
			{Amp: 0.00000043806, Phase: 3.70444689758, Freq: 2352.86615377180},
			{Amp: 0.00000031933, Phase: 4.00026369781, Freq: 1577.34354244780},
		},
		{ // B1
			{Amp: 0.00000903000, Phase: 3.89729061890, Freq: 5507.55323866740},
			{Amp: 0.00000618000, Phase: 1.73038850355, Freq: 5223.69391980220},
			{Amp: 0.00000380000, Phase: 5.24404145734, Freq: 2352.86615377180},
		},
		{ // B2
			{Amp: 0.00000166666, Phase: 1.62703209173, Freq: 84334.66158130829},
			{Amp: 0.00000076284, Phase: 3.98457061213, Freq: 5507.55323866740},
			{Amp: 0.00000050288, Phase: 0.18442414768, Freq: 5223.69391980220},
		},
		{ // B3
			{Amp: 0.00000004465, Phase: 0.50006599129, Freq: 5507.55323866740},
		},
		{ // B4
			{Amp: 0.00000000406, Phase: 2.32791022210, Freq: 5507.55323866740},
		},
		nil, // B5 unpopulated for Earth
	},
	R: [6]terms{
		{ // R0
			{Amp: 1.00013988784, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01670699632, Phase: 3.09846350258, Freq: 6283.07584999140},
			{Amp: 0.00013956024, Phase: 3.05524609456, Freq: 12566.15169998280},
			{Amp: 0.00003083720, Phase: 5.19846674381, Freq: 77713.77146812050},
			{Amp: 0.00001628463, Phase: 1.17387558054, Freq: 5753.38488489680},
			{Amp: 0.00001575572, Phase: 2.84685214877, Freq: 7860.41939243920},
			{Amp: 0.00000924799, Phase: 5.45292236722, Freq: 11506.76976979360},
			{Amp: 0.00000542439, Phase: 4.56409151453, Freq: 3930.20969621960},
			{Amp: 0.00000472110, Phase: 3.66100022149, Freq: 5884.92684658320},
			{Amp: 0.00000346078, Phase: 0.96368627272, Freq: 5507.55323866740},
			{Amp: 0.00000328820, Phase: 5.89983686142, Freq: 5223.69391980220},
			{Amp: 0.00000306784, Phase: 0.29867139512, Freq: 5573.14280143310},
			{Amp: 0.00000243181, Phase: 4.27349529790, Freq: 11790.62908865880},
			{Amp: 0.00000211836, Phase: 5.84714461348, Freq: 1577.34354244780},
			{Amp: 0.00000185740, Phase: 5.02194447178, Freq: 10977.07880469900},
			{Amp: 0.00000174844, Phase: 3.01193636733, Freq: 18849.22754997420},
			{Amp: 0.00000109835, Phase: 5.05510635860, Freq: 5486.77784317500},
			{Amp: 0.00000098316, Phase: 0.88681311278, Freq: 6069.77675455340},
			{Amp: 0.00000086500, Phase: 5.68956418946, Freq: 15720.83878487840},
			{Amp: 0.00000085831, Phase: 1.27079125277, Freq: 161000.68573767410},
			{Amp: 0.00000064908, Phase: 0.27251341435, Freq: 17260.15465469040},
			{Amp: 0.00000062917, Phase: 0.92177053978, Freq: 529.69096509460},
			{Amp: 0.00000057056, Phase: 2.01374292245, Freq: 83996.84731811189},
			{Amp: 0.00000055736, Phase: 5.24159799170, Freq: 71430.69561812909},
			{Amp: 0.00000049384, Phase: 3.24501240359, Freq: 2544.31441988340},
			{Amp: 0.00000046966, Phase: 2.57805070386, Freq: 775.52261132400},
			{Amp: 0.00000044810, Phase: 5.53715807302, Freq: 9437.76293488700},
			{Amp: 0.00000042834, Phase: 6.01110257982, Freq: 6275.96230299060},
			{Amp: 0.00000038956, Phase: 5.36071738169, Freq: 4694.00295470760},
			{Amp: 0.00000037710, Phase: 2.39255343974, Freq: 8827.39026987480},
			{Amp: 0.00000036780, Phase: 0.82961281844, Freq: 19651.04848109800},
			{Amp: 0.00000036640, Phase: 4.90118421902, Freq: 12139.55350910680},
			{Amp: 0.00000036346, Phase: 1.67087416194, Freq: 12036.46073488820},
			{Amp: 0.00000035245, Phase: 1.84270693282, Freq: 2942.46342329160},
			{Amp: 0.00000033260, Phase: 0.24370300098, Freq: 7084.89678111520},
			{Amp: 0.00000032029, Phase: 0.18368229781, Freq: 5088.62883976680},
			{Amp: 0.00000032059, Phase: 1.77775642085, Freq: 398.14900340820},
			{Amp: 0.00000028033, Phase: 1.21344868176, Freq: 6286.59896834040},
			{Amp: 0.00000027701, Phase: 1.89934330904, Freq: 6279.55273164240},
			{Amp: 0.00000026388, Phase: 4.58896850401, Freq: 10447.38783960440},
		},
		{ // R1
			{Amp: 0.00103018607, Phase: 1.10748968172, Freq: 6283.07584999140},
			{Amp: 0.00001721238, Phase: 1.06442300386, Freq: 12566.15169998280},
			{Amp: 0.00000702217, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000032345, Phase: 1.02168583254, Freq: 18849.22754997420},
			{Amp: 0.00000030801, Phase: 2.84358443952, Freq: 5507.55323866740},
			{Amp: 0.00000024978, Phase: 1.31906570344, Freq: 5223.69391980220},
			{Amp: 0.00000018487, Phase: 1.42428709076, Freq: 1577.34354244780},
			{Amp: 0.00000010077, Phase: 5.91385248388, Freq: 10977.07880469900},
			{Amp: 0.00000008654, Phase: 1.42046854427, Freq: 6275.96230299060},
			{Amp: 0.00000008635, Phase: 0.27158192945, Freq: 5486.77784317500},
		},
		{ // R2
			{Amp: 0.00004359385, Phase: 5.78455133808, Freq: 6283.07584999140},
			{Amp: 0.00000123633, Phase: 5.57935427994, Freq: 12566.15169998280},
			{Amp: 0.00000012342, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000008792, Phase: 3.62777893099, Freq: 77713.77146812050},
			{Amp: 0.00000005689, Phase: 1.86958905084, Freq: 5573.14280143310},
			{Amp: 0.00000003302, Phase: 5.47034879713, Freq: 18849.22754997420},
		},
		{ // R3
			{Amp: 0.00000144595, Phase: 4.27319433901, Freq: 6283.07584999140},
			{Amp: 0.00000006729, Phase: 3.91706261708, Freq: 12566.15169998280},
		},
		{ // R4
			{Amp: 0.00000003858, Phase: 2.56389016346, Freq: 6283.07584999140},
		},
	},
}
